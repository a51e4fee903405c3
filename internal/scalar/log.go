package scalar

import "math"

// Log returns the natural logarithm of v.
// Non-positive inputs produce NaN or -Inf as math.Log does.
//
// Backward:
//   - d(ln v)/dv = 1/v
func (v *Value) Log() *Value {
	x := v.data
	out := newResult(math.Log(x), OpLog, v)
	out.backward = func() {
		v.grad += out.grad / x
	}
	return out
}
