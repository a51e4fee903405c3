package config

import "errors"

// Validation errors.
var (
	ErrInvalidModel     = errors.New("config: invalid model")
	ErrInvalidEpochs    = errors.New("config: epochs must be positive")
	ErrUnknownOptimizer = errors.New("config: unknown optimizer kind")
	ErrSampleShape      = errors.New("config: sample does not match model")
	ErrNoSamples        = errors.New("config: no sample blocks and model does not fit the demo set")
	ErrInvalidVar       = errors.New("config: invalid variable")
)
