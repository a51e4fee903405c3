package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/optim"
	"github.com/born-ml/scalar/internal/scalar"
)

var (
	_ optim.Optimizer = (*optim.SGD)(nil)
	_ optim.Optimizer = (*optim.Adam)(nil)
)

func TestSGD_Defaults(t *testing.T) {
	s := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, s.GetLR())

	s.SetLR(0.5)
	assert.Equal(t, 0.5, s.GetLR())
}

func TestSGD_Step(t *testing.T) {
	w := scalar.New(1)
	w.SetGrad(2)

	s := optim.NewSGD([]*scalar.Value{w}, optim.SGDConfig{LR: 0.1})
	s.Step()
	assert.InDelta(t, 0.8, w.Data(), 1e-12)

	s.ZeroGrad()
	assert.Equal(t, 0.0, w.Grad())
}

func TestSGD_Momentum(t *testing.T) {
	w := scalar.New(0)
	s := optim.NewSGD([]*scalar.Value{w}, optim.SGDConfig{LR: 1, Momentum: 0.5})

	w.SetGrad(1)
	s.Step() // v = 1
	assert.InDelta(t, -1.0, w.Data(), 1e-12)

	w.SetGrad(1)
	s.Step() // v = 0.5*1 + 1
	assert.InDelta(t, -2.5, w.Data(), 1e-12)
}

func TestAdam_Defaults(t *testing.T) {
	a := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, a.GetLR())
	assert.Equal(t, 0, a.Steps())
}

// TestAdam_FirstStep checks that bias correction makes the first update
// lr * sign(grad).
func TestAdam_FirstStep(t *testing.T) {
	w := scalar.New(1)
	w.SetGrad(4)

	a := optim.NewAdam([]*scalar.Value{w}, optim.AdamConfig{LR: 0.1})
	a.Step()

	assert.InDelta(t, 0.9, w.Data(), 1e-6)
	assert.Equal(t, 1, a.Steps())
}

// TestOptimizers_MinimizeQuadratic runs each optimizer on (w - 3)².
func TestOptimizers_MinimizeQuadratic(t *testing.T) {
	tests := []struct {
		name  string
		steps int
		make  func(params []*scalar.Value) optim.Optimizer
	}{
		{"sgd", 200, func(p []*scalar.Value) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.1})
		}},
		{"sgd momentum", 200, func(p []*scalar.Value) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.05, Momentum: 0.9})
		}},
		{"adam", 500, func(p []*scalar.Value) optim.Optimizer {
			return optim.NewAdam(p, optim.AdamConfig{LR: 0.1})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := scalar.New(0)
			opt := tt.make([]*scalar.Value{w})

			for i := 0; i < tt.steps; i++ {
				loss := w.Sub(scalar.Const(3)).Pow(scalar.Const(2))
				opt.ZeroGrad()
				autodiff.Backward(loss)
				opt.Step()
			}

			assert.InDelta(t, 3.0, w.Data(), 1e-2)
			assert.False(t, math.IsNaN(w.Data()))
		})
	}
}
