package scalar

// Div returns v / other, built as v * other^-1.
//
// Dividing by a zero-valued node follows IEEE 754 and yields ±Inf or NaN in
// both the value and the gradients.
func (v *Value) Div(other Operand) *Value {
	return v.Mul(lift(other).Pow(Const(-1)))
}
