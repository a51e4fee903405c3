package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalar/internal/scalar"
)

// Layer is a set of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates nout neurons with nin inputs each.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	if nout <= 0 {
		panic(fmt.Sprintf("nn: layer needs at least one neuron, got %d", nout))
	}
	l := &Layer{neurons: make([]*Neuron, nout)}
	for i := range l.neurons {
		n := NewNeuron(nin, rng)
		prefixLabels(fmt.Sprintf("neurons.%d.", i), n.Parameters())
		l.neurons[i] = n
	}
	return l
}

// Forward returns one output per neuron.
func (l *Layer) Forward(inputs []*scalar.Value) []*scalar.Value {
	out := make([]*scalar.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Activate(inputs)
	}
	return out
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}
