// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that update scalar parameters from their
// accumulated gradients.
//
// Training loop:
//
//	for epoch := range epochs {
//	    loss := nn.SumSquaredError(model.Forward(x), y)
//	    optimizer.ZeroGrad()
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim
