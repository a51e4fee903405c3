package scalar

// Operand is anything that can take part in a binary operation: a *Value or
// a Const. Constants are wrapped in a fresh leaf at every use.
type Operand interface {
	node() *Value
}

// Const is a plain number used as an operand. It becomes a new leaf each
// time it is passed to an operation.
type Const float64

func (c Const) node() *Value {
	return New(float64(c))
}

func (v *Value) node() *Value {
	return v
}

// lift converts an operand into a graph node.
func lift(o Operand) *Value {
	if o == nil {
		panic("scalar: nil operand")
	}
	n := o.node()
	if n == nil {
		panic("scalar: nil operand")
	}
	return n
}

// Add returns a + b. Use it when the left operand is a constant.
func Add(a, b Operand) *Value {
	return lift(a).Add(b)
}

// Sub returns a - b.
func Sub(a, b Operand) *Value {
	return lift(a).Sub(b)
}

// Mul returns a * b.
func Mul(a, b Operand) *Value {
	return lift(a).Mul(b)
}

// Div returns a / b.
func Div(a, b Operand) *Value {
	return lift(a).Div(b)
}

// Sum adds all values left to right. An empty slice yields a zero leaf.
func Sum(values []*Value) *Value {
	if len(values) == 0 {
		return New(0)
	}
	out := values[0]
	for _, v := range values[1:] {
		out = out.Add(v)
	}
	return out
}
