package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalar/internal/cli"
	"github.com/born-ml/scalar/internal/config"
)

func TestRun_Version(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &logs, []string{"version"}))
	assert.Equal(t, "scalar "+version+"\n", out.String())
}

func TestRun_Help(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &logs, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_Grad(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &logs, []string{"grad", "-x", "3"}))

	assert.Contains(t, out.String(), "f(3) = 20\n")
	assert.Contains(t, out.String(), "f'(3) = 14\n")
}

func TestRun_ParseError(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Train(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "run.hcl")
	ckpt := filepath.Join(dir, "model.json")
	src := `
seed   = 1
epochs = 30
model {
  inputs = 3
  layers = [4, 1]
}
optimizer {
  kind          = "sgd"
  learning_rate = var.lr
}
`
	require.NoError(t, os.WriteFile(cfg, []byte(src), 0o600))

	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{
		"-log-format", "json", "-log-level", "debug",
		"train", "-config", cfg, "-var", "lr=0.05", "-checkpoint", ckpt,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "epochs = 30")
	assert.Contains(t, logs.String(), `"msg":"Training finished."`)
	assert.Contains(t, logs.String(), `"msg":"Checkpoint written."`)

	raw, err := os.ReadFile(ckpt)
	require.NoError(t, err)
	var state map[string]float64
	require.NoError(t, json.Unmarshal(raw, &state))
	assert.Len(t, state, 4*(3+1)+(4+1))
	assert.Contains(t, state, "layers.1.neurons.0.b")
}

func TestRun_TrainErrors(t *testing.T) {
	var out, logs bytes.Buffer

	err := run(context.Background(), &out, &logs, []string{"train", "-config", filepath.Join(t.TempDir(), "none.hcl")})
	assert.ErrorContains(t, err, "failed to parse")

	err = run(context.Background(), &out, &logs, []string{"train", "-config", "x.hcl", "-var", "broken"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)

	zero := filepath.Join(t.TempDir(), "zero.hcl")
	require.NoError(t, os.WriteFile(zero, []byte("epochs = 0\nmodel {\n  inputs = 3\n  layers = [1]\n}\n"), 0o600))
	out.Reset()
	err = run(context.Background(), &out, &logs, []string{"train", "-config", zero})
	assert.ErrorIs(t, err, config.ErrInvalidEpochs)
	assert.Empty(t, out.String())
}
