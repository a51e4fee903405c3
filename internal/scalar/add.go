package scalar

// Add returns v + other.
//
// Backward:
//   - d(v+o)/dv = 1
//   - d(v+o)/do = 1
func (v *Value) Add(other Operand) *Value {
	o := lift(other)
	out := newResult(v.data+o.data, OpAdd, v, o)
	out.backward = func() {
		v.grad += out.grad
		o.grad += out.grad
	}
	return out
}
