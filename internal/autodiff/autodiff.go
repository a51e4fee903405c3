// Package autodiff drives reverse-mode differentiation over graphs of
// scalar.Value nodes.
//
// Backward seeds the root gradient with 1, orders every node reachable
// through operand edges so that each node comes after all of its operands,
// and runs the local-gradient rules in reverse of that order. Every node
// therefore propagates only after all of its consumers have added their
// contribution to its gradient.
//
// Usage:
//
//	x := scalar.New(3)
//	y := x.Mul(x).Add(x)  // y = x² + x
//	autodiff.Backward(y)
//	fmt.Println(x.Grad()) // 2x + 1 = 7
//
// Gradients accumulate. Running Backward twice on the same graph without
// resetting doubles every non-root gradient. Call ZeroGrad (or pass
// WithZeroGrad) before reusing a graph.
package autodiff

import "github.com/born-ml/scalar/internal/scalar"

// Option configures a Backward call.
type Option func(*options)

type options struct {
	zeroGrad bool
	observer func(*scalar.Value)
}

// WithZeroGrad resets the gradient of every node reachable from the root
// before the pass.
func WithZeroGrad() Option {
	return func(o *options) {
		o.zeroGrad = true
	}
}

// WithObserver registers fn to be called with each node right before its
// local-gradient rule runs. A nil fn is ignored.
func WithObserver(fn func(*scalar.Value)) Option {
	return func(o *options) {
		if fn != nil {
			o.observer = fn
		}
	}
}

// Backward computes d(root)/d(node) for root and all of its ancestors.
//
// Algorithm:
//  1. Optionally zero the reachable subgraph (WithZeroGrad)
//  2. Seed root.grad = 1
//  3. Build the post-order of the reachable subgraph
//  4. Walk it in reverse, running each node's rule exactly once
//
// Without WithZeroGrad only the root gradient is reset; gradients left over
// from earlier passes are summed into the result.
func Backward(root *scalar.Value, opts ...Option) {
	if root == nil {
		panic("autodiff: backward called on nil value")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	order := TopologicalOrder(root)
	if o.zeroGrad {
		for _, v := range order {
			v.ZeroGrad()
		}
	}

	root.SetGrad(1)
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if o.observer != nil {
			o.observer(v)
		}
		v.Propagate()
	}
}

// ZeroGrad resets the gradient of every node reachable from root.
func ZeroGrad(root *scalar.Value) {
	if root == nil {
		return
	}
	for _, v := range TopologicalOrder(root) {
		v.ZeroGrad()
	}
}
