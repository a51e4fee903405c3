package scalar

// Mul returns v * other.
//
// Backward:
//   - d(v*o)/dv = o
//   - d(v*o)/do = v
//
// Both factors are captured at construction, so a later SetData on an
// operand does not change the gradient of this node.
func (v *Value) Mul(other Operand) *Value {
	o := lift(other)
	vd, od := v.data, o.data
	out := newResult(vd*od, OpMul, v, o)
	out.backward = func() {
		v.grad += od * out.grad
		o.grad += vd * out.grad
	}
	return out
}
