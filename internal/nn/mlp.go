package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalar/internal/scalar"
)

// MLP is a multi-layer perceptron: a chain of fully connected tanh layers.
//
// Example:
//
//	// 3 inputs, two hidden layers of 4, one output.
//	model := nn.NewMLP(3, []int{4, 4, 1}, rng)
type MLP struct {
	inputs int
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of sizes.
func NewMLP(nin int, sizes []int, rng *rand.Rand) *MLP {
	if len(sizes) == 0 {
		panic("nn: MLP needs at least one layer")
	}
	m := &MLP{inputs: nin, layers: make([]*Layer, len(sizes))}
	in := nin
	for i, out := range sizes {
		l := NewLayer(in, out, rng)
		prefixLabels(fmt.Sprintf("layers.%d.", i), l.Parameters())
		m.layers[i] = l
		in = out
	}
	return m
}

// Forward feeds inputs through every layer.
func (m *MLP) Forward(inputs []*scalar.Value) []*scalar.Value {
	out := inputs
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// Parameters returns the parameters of every layer in order.
func (m *MLP) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// NumInputs returns the number of inputs the network expects.
func (m *MLP) NumInputs() int {
	return m.inputs
}

// NumOutputs returns the size of the last layer.
func (m *MLP) NumOutputs() int {
	return len(m.layers[len(m.layers)-1].neurons)
}
