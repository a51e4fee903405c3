// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural-network building blocks on scalar values.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(w·x + b)
//   - Layer: neurons sharing their inputs
//   - MLP: a chain of layers
//   - Loss functions: SumSquaredError, MeanSquaredError
//   - Utilities: Module interface, ZeroGrad, StateDict, LoadStateDict
//   - Initialization: Uniform with an explicit *rand.Rand
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(1))
//	model := nn.NewMLP(3, []int{4, 4, 1}, rng)
//
//	out := model.Forward(nn.Inputs(2, 3, -1))
//	loss := nn.SumSquaredError(out, nn.Inputs(1))
//
//	nn.ZeroGrad(model)
//	autodiff.Backward(loss)
//	for _, p := range model.Parameters() {
//	    fmt.Println(p.Label(), p.Grad())
//	}
package nn
