// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/scalar"
)

// Module is the interface shared by Neuron, Layer and MLP.
type Module = nn.Module

// Neuron computes tanh(w·x + b).
type Neuron = nn.Neuron

// Layer is a set of neurons sharing their inputs.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// LossFunc reduces predictions and targets to a scalar loss.
type LossFunc = nn.LossFunc

// State dict errors.
var (
	ErrMissingParameter    = nn.ErrMissingParameter
	ErrUnexpectedParameter = nn.ErrUnexpectedParameter
	ErrDuplicateParameter  = nn.ErrDuplicateParameter
)

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, rng)
}

// NewLayer creates nout neurons with nin inputs each.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, rng)
}

// NewMLP creates an MLP with nin inputs and one layer per entry of sizes.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, rand.New(rand.NewSource(1)))
func NewMLP(nin int, sizes []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(nin, sizes, rng)
}

// Uniform returns a leaf drawn from U(lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) *scalar.Value {
	return nn.Uniform(rng, lo, hi)
}

// Inputs wraps numbers into fresh leaves.
func Inputs(xs ...float64) []*scalar.Value {
	return nn.Inputs(xs...)
}

// Values returns the data of vs.
func Values(vs []*scalar.Value) []float64 {
	return nn.Values(vs)
}

// ZeroGrad resets the gradients of all parameters of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// SumSquaredError returns Σ (pred - target)².
func SumSquaredError(preds, targets []*scalar.Value) *scalar.Value {
	return nn.SumSquaredError(preds, targets)
}

// MeanSquaredError returns Σ (pred - target)² / n.
func MeanSquaredError(preds, targets []*scalar.Value) *scalar.Value {
	return nn.MeanSquaredError(preds, targets)
}

// StateDict maps parameter labels to values. Panics if two parameters
// share a label.
func StateDict(m Module) map[string]float64 {
	return nn.StateDict(m)
}

// LoadStateDict copies values from state into m.
func LoadStateDict(m Module, state map[string]float64) error {
	return nn.LoadStateDict(m, state)
}
