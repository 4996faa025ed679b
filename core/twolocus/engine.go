// core/twolocus/engine.go
// Two biallelic loci (A/a, B/b) under multiplicative selection, drift on 2N
// gene copies per locus, and symmetric mutation.
//
// Per generation:
//  1) Selection: reweight a, b from the current (a, b) by mean fitness W̄.
//  2) Drift: a, b ← Binomial(2N, ·)/2N, each locus independently.
//  3) Mutation: x ← (1-u)x + u(1-x).
//  4) ab ← a·b.
//
// Step 4 re-imposes linkage equilibrium every generation, so linkage
// disequilibrium built up by drift is erased. This is an approximation.
//
// SelectionLegacy is the reference recurrence: b is reweighted by its
// single-haplotype share first, then a against the updated b. It does not
// hold frequencies flat without selection, so SelectionMarginal, which
// reweights each allele by every haplotype carrying it, is the default.

package twolocus

import (
	"math"

	"wfsim-core/numeric"
	"wfsim-core/param"
	"wfsim-core/wf"
)

// Engine runs one two-locus simulation. It is single-use and not safe for
// concurrent use.
type Engine struct {
	p       Params
	sampler numeric.Sampler

	wab, w0a, w0b, w00 float64

	a, b, ab float64
	traj     []Snapshot
}

// New validates p, initialises the state from (A0, B0) and records
// generation 0. The sampler is owned by the engine from here on.
func New(p Params, s numeric.Sampler) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &param.Error{Field: "sampler", Value: nil, Reason: "a sampler is required"}
	}
	e := &Engine{p: p, sampler: s}
	e.wab, e.w0a, e.w0b, e.w00 = p.Fitness()

	e.a, e.b = p.A0, p.B0
	e.ab = e.a * e.b
	capHint := p.Generations + 1
	if capHint > 4096 {
		capHint = 4096
	}
	e.traj = make([]Snapshot, 0, capHint)
	e.record()
	return e, nil
}

func (e *Engine) record() {
	e.traj = append(e.traj, snapshot(len(e.traj), e.a, e.b, e.ab))
}

// meanFitness is W̄ for allele frequencies a, b and joint frequency ab.
func (e *Engine) meanFitness(a, b, ab float64) float64 {
	return b*(1-a)*e.w0b + a*(1-b)*e.w0a + e.wab*ab + (1-b)*(1-a)*e.w00
}

func usable(w float64) bool { return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w) }

// selection returns post-selection (a, b).
func (e *Engine) selection() (float64, float64, error) {
	a, b, ab := e.a, e.b, e.ab
	w := e.meanFitness(a, b, ab)
	if !usable(w) {
		return 0, 0, wf.ErrMeanFitness
	}
	if e.p.Selection == SelectionLegacy {
		b = b * (1 - a) * e.w0b / w
		w = e.meanFitness(a, b, a*b)
		if !usable(w) {
			return 0, 0, wf.ErrMeanFitness
		}
		a = a * (1 - b) * e.w0a / w
		return a, b, nil
	}
	// The joint share wab·ab/W̄ is not carried; step 4 replaces it.
	na := (a*(1-b)*e.w0a + e.wab*ab) / w
	nb := (b*(1-a)*e.w0b + e.wab*ab) / w
	return na, nb, nil
}

func (e *Engine) drift(x float64) float64 {
	copies := 2 * e.p.N
	return e.sampler.Binomial(copies, numeric.Clamp01(x)) / float64(copies)
}

// Step advances one generation and appends its snapshot. On a done engine
// it returns wf.ErrFinished and changes nothing.
func (e *Engine) Step() error {
	if e.Done() {
		return wf.ErrFinished
	}
	a, b, err := e.selection()
	if err != nil {
		return &wf.StepError{Generation: e.Generation() + 1, Err: err}
	}

	a, b = e.drift(a), e.drift(b)

	a = numeric.Mutate(a, e.p.U)
	b = numeric.Mutate(b, e.p.U)

	e.a, e.b = a, b
	e.ab = a * b
	e.record()
	return nil
}

// Fixed reports whether both loci sit exactly at 0 or 1.
func (e *Engine) Fixed() bool {
	return (e.a == 0 || e.a == 1) && (e.b == 0 || e.b == 1)
}

// Done reports whether Step has nothing left to do.
func (e *Engine) Done() bool {
	return e.Fixed() || e.Generation() >= e.p.Generations
}

// Generation is the index of the most recent snapshot.
func (e *Engine) Generation() int { return len(e.traj) - 1 }

// Last returns the most recent snapshot.
func (e *Engine) Last() Snapshot { return e.traj[len(e.traj)-1] }

// Params returns the parameters the engine was built with.
func (e *Engine) Params() Params { return e.p }

// Trajectory returns a read-only view of every snapshot so far.
func (e *Engine) Trajectory() wf.Trajectory[Snapshot] { return wf.NewTrajectory(e.traj) }

// Run steps until fixation or the generation cap and returns the trajectory.
// On error the trajectory holds every generation completed before it.
func (e *Engine) Run() (wf.Trajectory[Snapshot], error) {
	for !e.Done() {
		if err := e.Step(); err != nil {
			return e.Trajectory(), err
		}
	}
	return e.Trajectory(), nil
}
