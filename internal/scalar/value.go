// Package scalar implements the node type of a scalar reverse-mode
// automatic differentiation engine.
//
// Every arithmetic method on *Value eagerly computes its result and returns a
// new node that remembers its operands and a local-gradient rule. The graph
// formed this way is a DAG: a node may feed any number of later nodes.
// Gradients are driven through the graph by the autodiff package.
//
// Usage:
//
//	a := scalar.New(2)
//	b := scalar.New(-3)
//	y := a.Mul(b).Add(scalar.Const(10)) // y.Data() == 4
//	autodiff.Backward(y)
//	fmt.Println(a.Grad()) // dy/da = b = -3
//
// Local-gradient rules always accumulate into operand gradients, so a node
// reached along several paths receives the sum of every path's contribution.
package scalar

import "fmt"

// Op identifies the operation that produced a Value.
// It is used for diagnostics only.
type Op string

// Operation tags. Subtraction, negation and division are composed from
// these and carry the tag of their outermost primitive.
const (
	OpLeaf Op = ""
	OpAdd  Op = "+"
	OpMul  Op = "*"
	OpPow  Op = "**"
	OpTanh Op = "tanh"
	OpExp  Op = "exp"
	OpLog  Op = "log"
	OpReLU Op = "relu"
)

// Value is a single vertex of the computation graph.
//
// Nodes are compared by identity. Two Values holding the same number are
// distinct vertices with independent gradients.
type Value struct {
	data     float64
	grad     float64
	prev     []*Value // operands, in call order
	op       Op
	backward func() // nil for leaves
	label    string
}

// New creates a leaf node holding x.
func New(x float64) *Value {
	return &Value{data: x}
}

// newResult creates a derived node. The caller attaches the backward rule.
func newResult(data float64, op Op, operands ...*Value) *Value {
	return &Value{
		data: data,
		prev: operands,
		op:   op,
	}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData replaces the value of a leaf. Optimizers use it to move parameters
// between forward passes.
//
// Panics if v is a derived node: their values are fixed at construction.
func (v *Value) SetData(x float64) {
	if !v.IsLeaf() {
		panic(fmt.Sprintf("scalar: SetData on derived node (op %q)", v.op))
	}
	v.data = x
}

// Grad returns the accumulated gradient of the last backward root with
// respect to v.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the gradient. The evaluator uses it to seed the root.
func (v *Value) SetGrad(g float64) {
	v.grad = g
}

// ZeroGrad resets the gradient of this node only.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the tag of the operation that produced v.
func (v *Value) Op() Op {
	return v.op
}

// Operands returns the nodes v was computed from. The slice is shared with
// the node and must not be modified.
func (v *Value) Operands() []*Value {
	return v.prev
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return len(v.prev) == 0
}

// Propagate runs the local-gradient rule of v once, adding contributions
// derived from v's current gradient to its operands. It is a no-op for leaves.
//
// Propagate must only be called after every consumer of v has propagated;
// autodiff.Backward guarantees this ordering.
func (v *Value) Propagate() {
	if v.backward != nil {
		v.backward()
	}
}

// Label returns the diagnostic name of v.
func (v *Value) Label() string {
	return v.label
}

// SetLabel names v for diagnostics and returns it.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(%s, data=%g, grad=%g)", v.label, v.data, v.grad)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}
