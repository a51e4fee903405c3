// Package optim implements optimization algorithms for scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's accumulated gradient and move its value
// with scalar.Value.SetData. They only touch the leaves they were given.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    loss := nn.SumSquaredError(preds, targets)
//	    optimizer.ZeroGrad()
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

import "github.com/born-ml/scalar/internal/scalar"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad clears the gradients of all parameters. Call it before each
	// backward pass: gradients accumulate otherwise.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// zeroGrad resets the gradient of every parameter.
func zeroGrad(params []*scalar.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
