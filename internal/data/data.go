// Package data holds small reference functions and datasets used by the
// command-line demos.
package data

import "github.com/born-ml/scalar/internal/scalar"

// Quadratic builds f(x) = 3x² - 4x + 5 on the graph.
func Quadratic(x *scalar.Value) *scalar.Value {
	return x.Pow(scalar.Const(2)).Mul(scalar.Const(3)).
		Sub(x.Mul(scalar.Const(4))).
		Add(scalar.Const(5))
}

// QuadraticFloat evaluates f(x) = 3x² - 4x + 5 on plain floats.
func QuadraticFloat(x float64) float64 {
	return 3*x*x - 4*x + 5
}

// Sample is one input row with its expected outputs.
type Sample struct {
	Inputs []float64
	Target []float64
}

// Demo returns the four-row binary classifier set used by the default
// training run: three inputs, one output in {-1, 1}.
func Demo() []Sample {
	return []Sample{
		{Inputs: []float64{2.0, 3.0, -1.0}, Target: []float64{1.0}},
		{Inputs: []float64{3.0, -1.0, 0.5}, Target: []float64{-1.0}},
		{Inputs: []float64{0.5, 1.0, 1.0}, Target: []float64{-1.0}},
		{Inputs: []float64{1.0, 1.0, -1.0}, Target: []float64{1.0}},
	}
}
