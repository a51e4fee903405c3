package config

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/born-ml/scalar/internal/ctxlog"
	"github.com/born-ml/scalar/internal/data"
)

// Defaults applied to absent attributes.
const (
	DefaultSeed   int64 = 1
	DefaultEpochs       = 20
)

// Load parses and decodes the run file at path.
func Load(ctx context.Context, path string, vars map[string]cty.Value) (*Run, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding run file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, diags)
	}
	return decode(ctx, file, path, vars)
}

// Parse decodes a run definition held in memory. filename is used in
// diagnostics only.
func Parse(ctx context.Context, src []byte, filename string, vars map[string]cty.Value) (*Run, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}
	return decode(ctx, file, filename, vars)
}

func decode(ctx context.Context, file *hcl.File, filename string, vars map[string]cty.Value) (*Run, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(vars), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	run, err := resolve(&parsed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	ctxlog.FromContext(ctx).Debug("Decoded run file.",
		"path", filename,
		"layers", run.Layers,
		"optimizer", run.Optimizer.Kind,
		"samples", len(run.Samples))
	return run, nil
}

// evalContext exposes vars under the "var" namespace.
func evalContext(vars map[string]cty.Value) *hcl.EvalContext {
	obj := cty.EmptyObjectVal
	if len(vars) > 0 {
		obj = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": obj},
	}
}

// resolve applies defaults and validates the decoded file.
func resolve(f *hclFile) (*Run, error) {
	run := &Run{
		Seed:   DefaultSeed,
		Epochs: DefaultEpochs,
		Inputs: f.Model.Inputs,
		Layers: f.Model.Layers,
		Optimizer: Optimizer{
			Kind: KindSGD,
		},
	}
	if f.Seed != nil {
		run.Seed = *f.Seed
	}
	if f.Epochs != nil {
		run.Epochs = *f.Epochs
	}
	if run.Epochs <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEpochs, run.Epochs)
	}

	if run.Inputs <= 0 {
		return nil, fmt.Errorf("%w: inputs must be positive, got %d", ErrInvalidModel, run.Inputs)
	}
	if len(run.Layers) == 0 {
		return nil, fmt.Errorf("%w: at least one layer is required", ErrInvalidModel)
	}
	for i, size := range run.Layers {
		if size <= 0 {
			return nil, fmt.Errorf("%w: layer %d has size %d", ErrInvalidModel, i, size)
		}
	}

	if o := f.Optimizer; o != nil {
		run.Optimizer = Optimizer{
			Kind:         strings.ToLower(o.Kind),
			LearningRate: o.LearningRate,
			Momentum:     o.Momentum,
			Beta1:        o.Beta1,
			Beta2:        o.Beta2,
			Eps:          o.Eps,
		}
		if run.Optimizer.Kind == "" {
			run.Optimizer.Kind = KindSGD
		}
	}
	switch run.Optimizer.Kind {
	case KindSGD, KindAdam:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOptimizer, run.Optimizer.Kind)
	}

	outputs := run.Layers[len(run.Layers)-1]
	if len(f.Samples) == 0 {
		if run.Inputs != 3 || outputs != 1 {
			return nil, ErrNoSamples
		}
		run.Samples = data.Demo()
		return run, nil
	}

	run.Samples = make([]data.Sample, len(f.Samples))
	for i, s := range f.Samples {
		if len(s.Inputs) != run.Inputs || len(s.Target) != outputs {
			return nil, fmt.Errorf("%w: sample %d has %d inputs and %d targets, model has %d and %d",
				ErrSampleShape, i, len(s.Inputs), len(s.Target), run.Inputs, outputs)
		}
		run.Samples[i] = data.Sample{Inputs: s.Inputs, Target: s.Target}
	}
	return run, nil
}

// ParseVars turns name=value pairs into HCL variables. Values that parse as
// finite numbers become cty numbers, anything else a string.
func ParseVars(pairs []string) (map[string]cty.Value, error) {
	vars := make(map[string]cty.Value, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q, want name=value", ErrInvalidVar, pair)
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			vars[name] = cty.NumberFloatVal(f)
		} else {
			vars[name] = cty.StringVal(raw)
		}
	}
	return vars, nil
}
