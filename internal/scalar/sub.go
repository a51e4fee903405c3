package scalar

// Neg returns -v, built as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(Const(-1))
}

// Sub returns v - other, built as v + (-other).
func (v *Value) Sub(other Operand) *Value {
	return v.Add(lift(other).Neg())
}
