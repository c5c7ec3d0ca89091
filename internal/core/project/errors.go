// Package project materializes a scaffolded plugin on disk: it resolves the
// project layout, refuses to touch an existing directory, writes the
// manifest and source files, and optionally initializes git.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrDirectoryExists indicates the target project directory is already present.
	ErrDirectoryExists = errors.New("project directory already exists")

	// ErrStepFailed is matched by every *StepError.
	ErrStepFailed = errors.New("scaffold step failed")

	// ErrMissingAnswer indicates a request without the answers needed to lay out the project.
	ErrMissingAnswer = errors.New("missing required answer")
)

// StepError reports which materialization step failed and why.
type StepError struct {
	Step string
	Err  error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap exposes both ErrStepFailed and the underlying cause to errors.Is.
func (e *StepError) Unwrap() []error {
	return []error{ErrStepFailed, e.Err}
}

// attempt runs op and labels any failure with step. Each call site gets
// exactly one message.
func attempt[T any](step string, op func() (T, error)) (T, error) {
	v, err := op()
	if err != nil {
		var zero T
		return zero, &StepError{Step: step, Err: err}
	}
	return v, nil
}

// attemptDo is attempt for operations without a result.
func attemptDo(step string, op func() error) error {
	_, err := attempt(step, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}
