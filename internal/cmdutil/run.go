package cmdutil

import "context"

// Stepper is the engine surface the run loop needs.
type Stepper[T any] interface {
	Step() error
	Done() bool
	Last() T
}

// RunStream sends generation 0, then steps the engine until it is done,
// sending each new snapshot. ctx is checked between generations only.
// It returns the number of snapshots sent and the first error encountered.
func RunStream[T any](ctx context.Context, sim Stepper[T], send func(T) error) (int, error) {
	total := 0
	if err := send(sim.Last()); err != nil {
		return total, err
	}
	total++
	for !sim.Done() {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		if err := sim.Step(); err != nil {
			return total, err
		}
		if err := send(sim.Last()); err != nil {
			return total, err
		}
		total++
	}
	return total, nil
}
