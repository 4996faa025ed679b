package wf

import (
	"errors"
	"fmt"
)

var (
	// ErrFinished is returned by Step once the engine has fixed or hit its cap.
	ErrFinished = errors.New("wf: simulation finished")

	// ErrMeanFitness means selection produced a mean fitness that is zero,
	// negative, or not finite, so frequencies cannot be reweighted.
	ErrMeanFitness = errors.New("wf: degenerate mean fitness")
)

// StepError wraps a failure with the generation that was being produced.
type StepError struct {
	Generation int
	Err        error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("generation %d: %v", e.Generation, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
