package nn

import (
	"fmt"

	"github.com/born-ml/scalar/internal/scalar"
)

// LossFunc reduces predictions and targets to a single scalar loss.
type LossFunc func(preds, targets []*scalar.Value) *scalar.Value

// SumSquaredError returns Σ (pred - target)².
func SumSquaredError(preds, targets []*scalar.Value) *scalar.Value {
	if len(preds) != len(targets) {
		panic(fmt.Sprintf("nn: %d predictions for %d targets", len(preds), len(targets)))
	}
	terms := make([]*scalar.Value, len(preds))
	for i := range preds {
		terms[i] = preds[i].Sub(targets[i]).Pow(scalar.Const(2))
	}
	return scalar.Sum(terms)
}

// MeanSquaredError returns Σ (pred - target)² / n. An empty input yields a
// zero leaf.
func MeanSquaredError(preds, targets []*scalar.Value) *scalar.Value {
	sse := SumSquaredError(preds, targets)
	if len(preds) == 0 {
		return sse
	}
	return sse.Div(scalar.Const(float64(len(preds))))
}
