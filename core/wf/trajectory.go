package wf

// Trajectory is an ordered, read-only view of per-generation snapshots.
// Generation 0 is always present.
type Trajectory[S any] struct {
	snaps []S
}

// NewTrajectory copies snaps into a new view.
func NewTrajectory[S any](snaps []S) Trajectory[S] {
	return Trajectory[S]{snaps: append([]S(nil), snaps...)}
}

// Len returns the number of snapshots.
func (t Trajectory[S]) Len() int { return len(t.snaps) }

// At returns snapshot i. It panics when i is out of range, like a slice index.
func (t Trajectory[S]) At(i int) S { return t.snaps[i] }

// Last returns the final snapshot, or the zero value for an empty view.
func (t Trajectory[S]) Last() S {
	var zero S
	if len(t.snaps) == 0 {
		return zero
	}
	return t.snaps[len(t.snaps)-1]
}

// Snapshots returns a copy of the underlying slice.
func (t Trajectory[S]) Snapshots() []S { return append([]S(nil), t.snaps...) }

// Column projects one value per snapshot, in generation order.
func Column[S any, V any](t Trajectory[S], f func(S) V) []V {
	out := make([]V, len(t.snaps))
	for i, s := range t.snaps {
		out[i] = f(s)
	}
	return out
}
