package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Commands.
const (
	CommandVersion = "version"
	CommandGrad    = "grad"
	CommandTrain   = "train"
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Command is a parsed invocation.
type Command struct {
	Name      string
	LogLevel  string
	LogFormat string

	// grad
	X float64

	// train
	ConfigPath string
	Vars       []string
	Checkpoint string
}

// varsFlag collects repeated -var flags.
type varsFlag []string

func (v *varsFlag) String() string {
	return strings.Join(*v, ",")
}

func (v *varsFlag) Set(s string) error {
	*v = append(*v, s)
	return nil
}

const usage = `
scalar - scalar reverse-mode automatic differentiation.

Usage:
  scalar [options] <command> [command options]

Commands:
  version   Show version
  grad      Evaluate f(x) = 3x^2 - 4x + 5 and its derivative
  train     Train a multi-layer perceptron from an HCL run file

Options:
`

// Parse processes command-line arguments. It returns the command, a flag
// telling the caller to exit cleanly (help was shown), or an ExitError.
func Parse(args []string, output io.Writer) (*Command, bool, error) {
	global := flag.NewFlagSet("scalar", flag.ContinueOnError)
	global.SetOutput(output)
	global.Usage = func() {
		fmt.Fprint(output, usage)
		global.PrintDefaults()
	}

	logFormat := global.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevel := global.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cmd := &Command{
		LogFormat: strings.ToLower(*logFormat),
		LogLevel:  strings.ToLower(*logLevel),
	}
	if cmd.LogFormat != "text" && cmd.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cmd.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return nil, true, nil
	}
	cmd.Name = rest[0]

	sub := flag.NewFlagSet("scalar "+cmd.Name, flag.ContinueOnError)
	sub.SetOutput(output)
	switch cmd.Name {
	case CommandVersion:
	case CommandGrad:
		sub.Float64Var(&cmd.X, "x", 3, "Point at which to evaluate f and f'.")
	case CommandTrain:
		sub.StringVar(&cmd.ConfigPath, "config", "", "Path to the HCL run file.")
		sub.StringVar(&cmd.Checkpoint, "checkpoint", "", "Write the trained parameters as JSON to this path.")
		sub.Var((*varsFlag)(&cmd.Vars), "var", "Set an HCL variable, name=value. Repeatable.")
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cmd.Name)}
	}

	if err := sub.Parse(rest[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if sub.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(sub.Args(), " "))}
	}
	if cmd.Name == CommandTrain && cmd.ConfigPath == "" {
		return nil, false, &ExitError{Code: 2, Message: "train: -config is required"}
	}

	return cmd, false, nil
}
