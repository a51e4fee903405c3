package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalar/internal/cli"
)

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want cli.Command
	}{
		{
			name: "version",
			args: []string{"version"},
			want: cli.Command{Name: cli.CommandVersion, LogLevel: "info", LogFormat: "text"},
		},
		{
			name: "grad default",
			args: []string{"grad"},
			want: cli.Command{Name: cli.CommandGrad, LogLevel: "info", LogFormat: "text", X: 3},
		},
		{
			name: "grad with x and global flags",
			args: []string{"-log-level", "DEBUG", "-log-format", "json", "grad", "-x", "-1.5"},
			want: cli.Command{Name: cli.CommandGrad, LogLevel: "debug", LogFormat: "json", X: -1.5},
		},
		{
			name: "train",
			args: []string{"train", "-config", "run.hcl", "-var", "lr=0.1", "-var", "x=y", "-checkpoint", "out.json"},
			want: cli.Command{
				Name:       cli.CommandTrain,
				LogLevel:   "info",
				LogFormat:  "text",
				ConfigPath: "run.hcl",
				Vars:       []string{"lr=0.1", "x=y"},
				Checkpoint: "out.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd, exit, err := cli.Parse(tt.args, &out)
			require.NoError(t, err)
			assert.False(t, exit)
			assert.Equal(t, &tt.want, cmd)
		})
	}
}

func TestParse_Help(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}, {"grad", "-h"}} {
		var out bytes.Buffer
		cmd, exit, err := cli.Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cmd)
		assert.NotEmpty(t, out.String())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"bad format", []string{"-log-format", "xml", "version"}, "invalid log-format"},
		{"bad level", []string{"-log-level", "trace", "version"}, "invalid log-level"},
		{"unknown command", []string{"fly"}, `unknown command "fly"`},
		{"missing config", []string{"train"}, "-config is required"},
		{"extra args", []string{"version", "now"}, "unexpected arguments: now"},
		{"bad x", []string{"grad", "-x", "abc"}, "invalid value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := cli.Parse(tt.args, &out)
			require.Error(t, err)

			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Error(), tt.msg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := cli.NewLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
