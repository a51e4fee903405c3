// Package main provides the scalar autodiff CLI.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/cli"
	"github.com/born-ml/scalar/internal/config"
	"github.com/born-ml/scalar/internal/ctxlog"
	"github.com/born-ml/scalar/internal/data"
	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/optim"
	"github.com/born-ml/scalar/internal/scalar"
	"github.com/born-ml/scalar/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	// Minimal logger until flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run parses args and executes the command. Results go to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cmd, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cmd.LogLevel, cmd.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	switch cmd.Name {
	case cli.CommandVersion:
		fmt.Fprintf(outW, "scalar %s\n", version)
		return nil
	case cli.CommandGrad:
		return runGrad(outW, cmd.X)
	case cli.CommandTrain:
		return runTrain(ctx, outW, cmd)
	}
	return &cli.ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cmd.Name)}
}

// runGrad evaluates the reference quadratic and its derivative at x.
func runGrad(outW io.Writer, x float64) error {
	xv := scalar.New(x).SetLabel("x")
	y := data.Quadratic(xv)
	autodiff.Backward(y)

	fmt.Fprintf(outW, "f(%g) = %g\n", x, y.Data())
	fmt.Fprintf(outW, "f'(%g) = %g\n", x, xv.Grad())
	fmt.Fprintf(outW, "graph nodes = %d\n", len(autodiff.TopologicalOrder(y)))
	return nil
}

func runTrain(ctx context.Context, outW io.Writer, cmd *cli.Command) error {
	logger := ctxlog.FromContext(ctx)

	vars, err := config.ParseVars(cmd.Vars)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	runCfg, err := config.Load(ctx, cmd.ConfigPath, vars)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(runCfg.Seed))
	model := nn.NewMLP(runCfg.Inputs, runCfg.Layers, rng)
	trainer := train.NewTrainer(model, newOptimizer(runCfg.Optimizer, model.Parameters()), train.Config{
		Epochs: runCfg.Epochs,
	})

	history, err := trainer.Fit(ctx, runCfg.Samples)
	if err != nil {
		return err
	}

	fmt.Fprintf(outW, "epochs = %d, final loss = %.6f\n", len(history.Losses), history.Final())
	for _, s := range runCfg.Samples {
		fmt.Fprintf(outW, "%v -> %.4f (target %v)\n", s.Inputs, trainer.Predict(s.Inputs), s.Target)
	}

	if cmd.Checkpoint != "" {
		if err := writeCheckpoint(cmd.Checkpoint, model); err != nil {
			return err
		}
		logger.Info("Checkpoint written.", "path", cmd.Checkpoint)
	}
	return nil
}

func newOptimizer(o config.Optimizer, params []*scalar.Value) optim.Optimizer {
	if o.Kind == config.KindAdam {
		return optim.NewAdam(params, optim.AdamConfig{
			LR:    o.LearningRate,
			Betas: [2]float64{o.Beta1, o.Beta2},
			Eps:   o.Eps,
		})
	}
	return optim.NewSGD(params, optim.SGDConfig{
		LR:       o.LearningRate,
		Momentum: o.Momentum,
	})
}

func writeCheckpoint(path string, model nn.Module) error {
	buf, err := json.MarshalIndent(nn.StateDict(model), "", "  ")
	if err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}
