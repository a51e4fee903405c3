// Package nn implements small neural-network building blocks on top of the
// scalar engine.
//
// Every forward call builds fresh graph nodes; the parameters are long-lived
// leaves shared by all those graphs. After autodiff.Backward on a loss, each
// parameter's Grad holds d(loss)/d(parameter), ready for an optimizer.
//
//	rng := rand.New(rand.NewSource(1))
//	model := nn.NewMLP(3, []int{4, 4, 1}, rng)
//	out := model.Forward(nn.Inputs(2, 3, -1))
//	loss := nn.SumSquaredError(out, nn.Inputs(1))
//	autodiff.Backward(loss)
package nn

import "github.com/born-ml/scalar/internal/scalar"

// Module is the interface shared by Neuron, Layer and MLP.
type Module interface {
	// Forward builds the graph for one input row and returns the outputs.
	Forward(inputs []*scalar.Value) []*scalar.Value

	// Parameters returns the trainable leaves of the module in a stable
	// order. Modules without parameters return an empty slice.
	Parameters() []*scalar.Value
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Inputs wraps plain numbers into fresh leaves.
func Inputs(xs ...float64) []*scalar.Value {
	out := make([]*scalar.Value, len(xs))
	for i, x := range xs {
		out[i] = scalar.New(x)
	}
	return out
}

// Values returns the forward data of vs.
func Values(vs []*scalar.Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Data()
	}
	return out
}

// prefixLabels prepends prefix to the label of each parameter.
func prefixLabels(prefix string, params []*scalar.Value) {
	for _, p := range params {
		p.SetLabel(prefix + p.Label())
	}
}
