// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff computes gradients over graphs of scalar values.
//
// Example:
//
//	a := scalar.New(2)
//	b := scalar.New(-3)
//	y := a.Mul(b).Add(scalar.Const(10))
//
//	autodiff.Backward(y)
//	fmt.Println(a.Grad(), b.Grad()) // -3 2
//
// Gradients accumulate across passes. Zero them with ZeroGrad, or pass
// WithZeroGrad, before running Backward again on the same graph.
package autodiff

import (
	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/scalar"
)

// Option configures a Backward call.
type Option = autodiff.Option

// WithZeroGrad resets every reachable gradient before the pass.
func WithZeroGrad() Option {
	return autodiff.WithZeroGrad()
}

// WithObserver calls fn with each node right before its rule runs.
func WithObserver(fn func(*scalar.Value)) Option {
	return autodiff.WithObserver(fn)
}

// Backward populates the gradient of root and all of its ancestors.
func Backward(root *scalar.Value, opts ...Option) {
	autodiff.Backward(root, opts...)
}

// TopologicalOrder returns the nodes reachable from root, operands first.
func TopologicalOrder(root *scalar.Value) []*scalar.Value {
	return autodiff.TopologicalOrder(root)
}

// ZeroGrad resets the gradient of every node reachable from root.
func ZeroGrad(root *scalar.Value) {
	autodiff.ZeroGrad(root)
}
