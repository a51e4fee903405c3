package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/nn"
)

func TestSumSquaredError(t *testing.T) {
	preds := nn.Inputs(3, -1)
	targets := nn.Inputs(1, 1)

	loss := nn.SumSquaredError(preds, targets)
	autodiff.Backward(loss)

	assert.Equal(t, 8.0, loss.Data())
	assert.Equal(t, 4.0, preds[0].Grad())
	assert.Equal(t, -4.0, preds[1].Grad())
	assert.Equal(t, -4.0, targets[0].Grad())
}

func TestMeanSquaredError(t *testing.T) {
	preds := nn.Inputs(3, -1)
	targets := nn.Inputs(1, 1)

	loss := nn.MeanSquaredError(preds, targets)
	autodiff.Backward(loss)

	assert.Equal(t, 4.0, loss.Data())
	assert.Equal(t, 2.0, preds[0].Grad())
	assert.Equal(t, -2.0, preds[1].Grad())

	assert.Equal(t, 0.0, nn.MeanSquaredError(nil, nil).Data())
}

func TestLoss_LengthMismatchPanics(t *testing.T) {
	assert.PanicsWithValue(t, "nn: 1 predictions for 2 targets", func() {
		nn.SumSquaredError(nn.Inputs(1), nn.Inputs(1, 2))
	})
}
