package scalar

// ReLU returns max(0, v).
//
// Backward:
//   - 1 when v > 0, otherwise 0
func (v *Value) ReLU() *Value {
	data, local := 0.0, 0.0
	if v.data > 0 {
		data, local = v.data, 1
	}
	out := newResult(data, OpReLU, v)
	out.backward = func() {
		v.grad += local * out.grad
	}
	return out
}
