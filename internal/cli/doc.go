// Package cli parses command-line arguments, validates user input and
// handles process-level concerns like exit codes and logger construction.
package cli
