package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/scalar/internal/scalar"
)

// State dict errors.
var (
	ErrMissingParameter    = errors.New("nn: parameter missing from state dict")
	ErrUnexpectedParameter = errors.New("nn: state dict has unknown parameter")
	ErrDuplicateParameter  = errors.New("nn: duplicate parameter label")
)

// StateDict maps each parameter label to its current value.
//
// Labels are assigned at construction, e.g. "layers.1.neurons.0.w.2".
// Modules assembled by hand must give every parameter a distinct label.
//
// Panics if two parameters share a label.
func StateDict(m Module) map[string]float64 {
	params := m.Parameters()
	if err := checkLabels(params); err != nil {
		panic(err.Error())
	}
	state := make(map[string]float64, len(params))
	for _, p := range params {
		state[p.Label()] = p.Data()
	}
	return state
}

// LoadStateDict copies values from state into the parameters of m.
//
// Every parameter must be present and every key must name a parameter.
// On error no parameter is modified.
func LoadStateDict(m Module, state map[string]float64) error {
	params := m.Parameters()
	if err := checkLabels(params); err != nil {
		return err
	}
	known := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, ok := state[p.Label()]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingParameter, p.Label())
		}
		known[p.Label()] = struct{}{}
	}
	for name := range state {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnexpectedParameter, name)
		}
	}

	for _, p := range params {
		p.SetData(state[p.Label()])
	}
	return nil
}

// checkLabels reports the first label shared by two parameters.
func checkLabels(params []*scalar.Value) error {
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, ok := seen[p.Label()]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateParameter, p.Label())
		}
		seen[p.Label()] = struct{}{}
	}
	return nil
}
