package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalar/internal/scalar"
)

// Neuron computes tanh(w·x + b).
type Neuron struct {
	weights []*scalar.Value
	bias    *scalar.Value
}

// NewNeuron creates a neuron with nin weights and a bias, all drawn from
// U(-1, 1).
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("nn: neuron needs at least one input, got %d", nin))
	}
	n := &Neuron{weights: make([]*scalar.Value, nin)}
	for i := range n.weights {
		n.weights[i] = Uniform(rng, -1, 1).SetLabel(fmt.Sprintf("w.%d", i))
	}
	n.bias = Uniform(rng, -1, 1).SetLabel("b")
	return n
}

// Activate returns the single output of the neuron.
func (n *Neuron) Activate(inputs []*scalar.Value) *scalar.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(inputs)))
	}
	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}
	return act.Tanh()
}

// Forward implements Module.
func (n *Neuron) Forward(inputs []*scalar.Value) []*scalar.Value {
	return []*scalar.Value{n.Activate(inputs)}
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*scalar.Value {
	params := make([]*scalar.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// NumInputs returns the fan-in of the neuron.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}
