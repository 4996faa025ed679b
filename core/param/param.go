// Package param validates simulation parameters before an engine touches any
// state. Every failure wraps ErrInvalidParameter.
package param

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter marks a caller-supplied value the engines cannot use.
var ErrInvalidParameter = errors.New("invalid parameter")

// Error names the offending field.
type Error struct {
	Field  string
	Value  any
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *Error) Unwrap() error { return ErrInvalidParameter }

func invalid(field string, v any, reason string) error {
	return &Error{Field: field, Value: v, Reason: reason}
}

// Frequency requires x in [0,1].
func Frequency(field string, x float64) error {
	if math.IsNaN(x) || x < 0 || x > 1 {
		return invalid(field, x, "must be in [0,1]")
	}
	return nil
}

// PopulationSize requires n > 0.
func PopulationSize(field string, n int) error {
	if n <= 0 {
		return invalid(field, n, "must be a positive integer")
	}
	return nil
}

// Rate requires a mutation rate in [0,1].
func Rate(field string, u float64) error {
	if math.IsNaN(u) || u < 0 || u > 1 {
		return invalid(field, u, "must be in [0,1]")
	}
	return nil
}

// Finite rejects NaN and ±Inf. Selection and dominance are otherwise unbounded.
func Finite(field string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return invalid(field, x, "must be finite")
	}
	return nil
}

// Generations requires g >= 0.
func Generations(field string, g int) error {
	if g < 0 {
		return invalid(field, g, "must be ≥ 0")
	}
	return nil
}

// Fitness requires a relative fitness that is finite and not negative.
func Fitness(field string, w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return invalid(field, w, "relative fitness must be ≥ 0")
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
