// Package train runs the full-batch training loop: forward every sample,
// reduce to a loss, zero gradients, backward, optimizer step.
package train

import (
	"context"
	"errors"
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/ctxlog"
	"github.com/born-ml/scalar/internal/data"
	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/optim"
	"github.com/born-ml/scalar/internal/scalar"
)

// Training errors.
var (
	ErrNoSamples    = errors.New("train: no samples")
	ErrSampleShape  = errors.New("train: inconsistent sample shape")
	ErrInvalidEpoch = errors.New("train: epochs must be positive")
)

// Config holds the loop settings.
type Config struct {
	Epochs int         // Number of full passes (default: 20)
	Loss   nn.LossFunc // Loss over all outputs of all samples (default: nn.SumSquaredError)
}

// History records the loss after each epoch's forward pass.
type History struct {
	Losses []float64
}

// Final returns the loss of the last epoch, or 0 when empty.
func (h *History) Final() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return h.Losses[len(h.Losses)-1]
}

// Trainer runs the training loop: forward, loss, zero-grad, backward, step.
type Trainer struct {
	model     nn.Module
	optimizer optim.Optimizer
	config    Config
}

// NewTrainer creates a trainer. Zero config fields take their defaults.
func NewTrainer(model nn.Module, optimizer optim.Optimizer, config Config) *Trainer {
	if config.Epochs == 0 {
		config.Epochs = 20
	}
	if config.Loss == nil {
		config.Loss = nn.SumSquaredError
	}
	return &Trainer{model: model, optimizer: optimizer, config: config}
}

// Step runs one epoch over samples and returns the loss computed before the
// parameter update.
func (t *Trainer) Step(samples []data.Sample) float64 {
	var preds, targets []*scalar.Value
	for _, s := range samples {
		preds = append(preds, t.model.Forward(nn.Inputs(s.Inputs...))...)
		targets = append(targets, nn.Inputs(s.Target...)...)
	}
	loss := t.config.Loss(preds, targets)

	t.optimizer.ZeroGrad()
	autodiff.Backward(loss)
	t.optimizer.Step()

	return loss.Data()
}

// Fit trains on samples for the configured number of epochs.
//
// Cancellation is checked between epochs. On cancellation the history of
// completed epochs is returned along with the context error.
func (t *Trainer) Fit(ctx context.Context, samples []data.Sample) (*History, error) {
	if err := validate(samples, t.model); err != nil {
		return nil, err
	}
	if t.config.Epochs < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEpoch, t.config.Epochs)
	}

	logger := ctxlog.FromContext(ctx)
	logger.Info("Training started.",
		"samples", len(samples),
		"parameters", len(t.model.Parameters()),
		"epochs", t.config.Epochs,
		"lr", t.optimizer.GetLR())

	history := &History{Losses: make([]float64, 0, t.config.Epochs)}
	for epoch := 1; epoch <= t.config.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return history, fmt.Errorf("train: stopped at epoch %d: %w", epoch, err)
		}
		loss := t.Step(samples)
		history.Losses = append(history.Losses, loss)
		logger.Debug("Epoch finished.", "epoch", epoch, "loss", loss)
	}

	logger.Info("Training finished.", "final_loss", history.Final())
	return history, nil
}

// Predict runs the model on one input row.
func (t *Trainer) Predict(inputs []float64) []float64 {
	return nn.Values(t.model.Forward(nn.Inputs(inputs...)))
}

// fanIn is implemented by modules that know their input size.
type fanIn interface {
	NumInputs() int
}

// fanOut is implemented by modules that know their output size.
type fanOut interface {
	NumOutputs() int
}

// validate checks that all samples share the same input and target sizes
// and, when the model reports them, that those sizes match the model.
func validate(samples []data.Sample, model nn.Module) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	nin, nout := len(samples[0].Inputs), len(samples[0].Target)
	if m, ok := model.(fanIn); ok {
		nin = m.NumInputs()
	}
	if m, ok := model.(fanOut); ok {
		nout = m.NumOutputs()
	}
	for i, s := range samples {
		if len(s.Inputs) != nin || len(s.Target) != nout {
			return fmt.Errorf("%w: sample %d has %d inputs and %d targets, want %d and %d",
				ErrSampleShape, i, len(s.Inputs), len(s.Target), nin, nout)
		}
	}
	return nil
}
