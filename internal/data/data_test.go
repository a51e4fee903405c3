package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/data"
	"github.com/born-ml/scalar/internal/scalar"
)

func TestQuadratic(t *testing.T) {
	for _, at := range []float64{-2, 0, 2.0 / 3.0, 3} {
		x := scalar.New(at)
		y := data.Quadratic(x)
		autodiff.Backward(y)

		assert.InDelta(t, data.QuadraticFloat(at), y.Data(), 1e-12)
		assert.InDelta(t, 6*at-4, x.Grad(), 1e-12)
	}
}

func TestDemo(t *testing.T) {
	samples := data.Demo()
	assert.Len(t, samples, 4)
	for _, s := range samples {
		assert.Len(t, s.Inputs, 3)
		assert.Len(t, s.Target, 1)
	}
}
