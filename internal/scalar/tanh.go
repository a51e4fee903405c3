package scalar

import "math"

// Tanh returns the hyperbolic tangent of v.
//
// Backward uses the computed output t:
//   - d(tanh v)/dv = 1 - t²
func (v *Value) Tanh() *Value {
	t := math.Tanh(v.data)
	out := newResult(t, OpTanh, v)
	out.backward = func() {
		v.grad += (1 - t*t) * out.grad
	}
	return out
}
