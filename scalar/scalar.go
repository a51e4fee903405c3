// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the graph node of a scalar reverse-mode automatic
// differentiation engine.
//
// Arithmetic on *Value builds the computation graph eagerly:
//
//	import (
//	    "github.com/born-ml/scalar/autodiff"
//	    "github.com/born-ml/scalar/scalar"
//	)
//
//	func main() {
//	    x := scalar.New(3)
//	    y := x.Mul(x).Add(x)  // x² + x
//	    autodiff.Backward(y)
//	    fmt.Println(x.Grad()) // 7
//	}
//
// Binary operations take an Operand: either a *Value or a Const, which is
// wrapped in a new leaf at each use.
//
// # Known restrictions
//
// Pow treats its exponent as a constant. Passing a *Value as exponent reads
// its data once; the exponent node is not part of the graph and never
// receives a gradient.
package scalar

import "github.com/born-ml/scalar/internal/scalar"

// Value is a node of the computation graph.
type Value = scalar.Value

// Op identifies the operation that produced a Value.
type Op = scalar.Op

// Operation tags.
const (
	OpLeaf = scalar.OpLeaf
	OpAdd  = scalar.OpAdd
	OpMul  = scalar.OpMul
	OpPow  = scalar.OpPow
	OpTanh = scalar.OpTanh
	OpExp  = scalar.OpExp
	OpLog  = scalar.OpLog
	OpReLU = scalar.OpReLU
)

// Operand is a *Value or a Const.
type Operand = scalar.Operand

// Const is a plain number usable as an operand.
type Const = scalar.Const

// New creates a leaf holding x.
func New(x float64) *Value {
	return scalar.New(x)
}

// Add returns a + b.
func Add(a, b Operand) *Value {
	return scalar.Add(a, b)
}

// Sub returns a - b.
func Sub(a, b Operand) *Value {
	return scalar.Sub(a, b)
}

// Mul returns a * b.
func Mul(a, b Operand) *Value {
	return scalar.Mul(a, b)
}

// Div returns a / b.
func Div(a, b Operand) *Value {
	return scalar.Div(a, b)
}

// Sum adds values left to right. An empty slice yields a zero leaf.
func Sum(values []*Value) *Value {
	return scalar.Sum(values)
}
