// core/genotype/engine.go
// One biallelic locus tracked through genotype frequencies AA (P), Aa (H)
// and aa (Q), with selection and dominance, symmetric mutation, and drift
// over N diploid individuals.
//
// Per generation:
//  1) Selection: P, H, Q reweighted by wAA, wAa, waa over W̄.
//  2) A = P + H/2.
//  3) Mutation on A.
//  4) Hardy-Weinberg proportions rebuilt from A.
//  5) P, H clamped to [0,1].
//  6) Drift: P, H ← Binomial(N, ·)/N independently; Q by complement.
//
// Step 4 re-imposes random mating every generation and discards genotypic
// departures that drift produced.

package genotype

import (
	"math"

	"wfsim-core/numeric"
	"wfsim-core/param"
	"wfsim-core/wf"
)

// Engine runs one single-locus simulation. Single-use, not safe for
// concurrent use.
type Engine struct {
	p       Params
	sampler numeric.Sampler

	wAA, wAa, waa float64

	pp, h, q float64 // AA, Aa, aa
	traj     []Snapshot
}

// New validates p, sets Hardy-Weinberg genotypes from A0 and records
// generation 0.
func New(p Params, s numeric.Sampler) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &param.Error{Field: "sampler", Value: nil, Reason: "a sampler is required"}
	}
	e := &Engine{p: p, sampler: s}
	e.wAA, e.wAa, e.waa = p.Fitness()
	e.pp, e.h, e.q = hardyWeinberg(p.A0)

	capHint := p.Generations + 1
	if capHint > 4096 {
		capHint = 4096
	}
	e.traj = make([]Snapshot, 0, capHint)
	e.record()
	return e, nil
}

func hardyWeinberg(a float64) (pp, h, q float64) {
	return a * a, 2 * a * (1 - a), (1 - a) * (1 - a)
}

func (e *Engine) record() {
	e.traj = append(e.traj, snapshot(len(e.traj), e.pp, e.h, e.q))
}

func (e *Engine) drift(x float64) float64 {
	return e.sampler.Binomial(e.p.N, x) / float64(e.p.N)
}

// Step advances one generation. A done engine returns wf.ErrFinished.
func (e *Engine) Step() error {
	if e.Done() {
		return wf.ErrFinished
	}
	w := e.wAA*e.pp + e.wAa*e.h + e.waa*e.q
	if !(w > 0) || math.IsInf(w, 0) {
		return &wf.StepError{Generation: e.Generation() + 1, Err: wf.ErrMeanFitness}
	}
	pp := e.pp * e.wAA / w
	h := e.h * e.wAa / w

	a := numeric.Mutate(pp+0.5*h, e.p.U)
	pp, h, _ = hardyWeinberg(a)
	pp, h = numeric.Clamp01(pp), numeric.Clamp01(h)

	pp, h = e.drift(pp), e.drift(h)
	q := 1 - pp - h
	if e.p.Complement == ComplementRenormalize {
		if pp+h > 1 {
			ws := []float64{pp, h}
			numeric.Normalize(ws)
			pp, h, q = ws[0], ws[1], 0
		}
		q = numeric.Clamp01(q)
	}

	e.pp, e.h, e.q = pp, h, q
	e.record()
	return nil
}

// Fixed reports homozygote fixation: AA == 1 or aa == 1. A population of
// only heterozygotes does not count.
func (e *Engine) Fixed() bool { return e.pp == 1 || e.q == 1 }

// Done reports fixation or the generation cap.
func (e *Engine) Done() bool { return e.Fixed() || e.Generation() >= e.p.Generations }

// Generation is the index of the most recent snapshot.
func (e *Engine) Generation() int { return len(e.traj) - 1 }

// Last returns the most recent snapshot.
func (e *Engine) Last() Snapshot { return e.traj[len(e.traj)-1] }

// Params returns the parameters the engine was built with.
func (e *Engine) Params() Params { return e.p }

// Trajectory returns a read-only view of every snapshot so far.
func (e *Engine) Trajectory() wf.Trajectory[Snapshot] { return wf.NewTrajectory(e.traj) }

// Run steps until fixation or the cap.
func (e *Engine) Run() (wf.Trajectory[Snapshot], error) {
	for !e.Done() {
		if err := e.Step(); err != nil {
			return e.Trajectory(), err
		}
	}
	return e.Trajectory(), nil
}
