package scalar

import "math"

// Pow returns v raised to exp.
//
// The exponent is a constant. When exp is a *Value its current data is read
// once and the node is not recorded as an operand, so it never receives a
// gradient. Differentiating with respect to the exponent would need an
// x^y·ln(x) term that is not implemented.
//
// Backward:
//   - d(v^c)/dv = c * v^(c-1)
func (v *Value) Pow(exp Operand) *Value {
	c := lift(exp).data
	local := c * math.Pow(v.data, c-1)
	out := newResult(math.Pow(v.data, c), OpPow, v)
	out.backward = func() {
		v.grad += local * out.grad
	}
	return out
}
