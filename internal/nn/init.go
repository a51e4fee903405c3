package nn

import (
	"math/rand"

	"github.com/born-ml/scalar/internal/scalar"
)

// Uniform returns a leaf drawn uniformly from [lo, hi).
//
// The generator is passed explicitly so model construction is reproducible.
func Uniform(rng *rand.Rand, lo, hi float64) *scalar.Value {
	//nolint:gosec // weight initialization, not security-critical
	return scalar.New(lo + rng.Float64()*(hi-lo))
}
