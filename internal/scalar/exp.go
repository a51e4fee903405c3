package scalar

import "math"

// Exp returns e^v.
//
// Backward:
//   - d(e^v)/dv = e^v
func (v *Value) Exp() *Value {
	e := math.Exp(v.data)
	out := newResult(e, OpExp, v)
	out.backward = func() {
		v.grad += e * out.grad
	}
	return out
}
