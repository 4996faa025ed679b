package genotype

import (
	"errors"
	"math"
	"testing"

	"wfsim-core/numeric"
	"wfsim-core/param"
	"wfsim-core/wf"
)

const tol = 1e-9

// sampleFunc adapts a function to numeric.Sampler for scripted drift.
type sampleFunc func(n int, p float64) float64

func (f sampleFunc) Binomial(n int, p float64) float64 { return f(n, p) }

// fraction always returns the same share of n, ignoring p.
func fraction(x float64) numeric.Sampler {
	return sampleFunc(func(n int, _ float64) float64 { return float64(n) * x })
}

func mustNew(t *testing.T, p Params, s numeric.Sampler) *Engine {
	t.Helper()
	e, err := New(p, s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func mustRun(t *testing.T, e *Engine) wf.Trajectory[Snapshot] {
	t.Helper()
	tr, err := e.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return tr
}

func near(a, b float64) bool { return math.Abs(a-b) <= tol }

func TestFixedAtStart(t *testing.T) {
	p := Params{A0: 1, N: 100, Generations: 100}
	e := mustNew(t, p, numeric.NewBinomial(numeric.NewSource(1)))
	tr := mustRun(t, e)
	if tr.Len() != 1 {
		t.Fatalf("len=%d want 1", tr.Len())
	}
	if s := tr.At(0); s.P != 1 || s.H != 0 || s.Q != 0 || s.A != 1 {
		t.Fatalf("unexpected gen0 %+v", s)
	}
	if err := e.Step(); !errors.Is(err, wf.ErrFinished) {
		t.Fatalf("Step after fixation: %v", err)
	}
}

func TestHardyWeinbergAtStart(t *testing.T) {
	s := mustNew(t, Params{A0: 0.3, N: 10, Generations: 1}, numeric.Expected{}).Last()
	if !near(s.P, 0.09) || !near(s.H, 0.42) || !near(s.Q, 0.49) || !near(s.A, 0.3) {
		t.Fatalf("gen0 not in HW proportions: %+v", s)
	}
}

func TestGenotypesSumToOne(t *testing.T) {
	p := Params{A0: 0.4, N: 20, S: 0.1, D: 0.5, U: 0.01, Generations: 400}
	tr := mustRun(t, mustNew(t, p, numeric.NewBinomial(numeric.NewSource(9))))
	for i := 0; i < tr.Len(); i++ {
		s := tr.At(i)
		if !numeric.SumsToOne(tol, s.P, s.H, s.Q) {
			t.Fatalf("gen %d genotypes sum to %v (%+v)", i, s.Sum(), s)
		}
		if s.Q < 0 || s.P < 0 || s.H < 0 {
			t.Fatalf("gen %d negative frequency %+v", i, s)
		}
		if !near(s.A, s.P+s.H/2) {
			t.Fatalf("gen %d allele frequency inconsistent %+v", i, s)
		}
	}
}

func TestComplementPolicies(t *testing.T) {
	base := Params{A0: 0.5, N: 10, Generations: 1}

	renorm := mustNew(t, base, fraction(0.6))
	if err := renorm.Step(); err != nil {
		t.Fatal(err)
	}
	if s := renorm.Last(); !near(s.P, 0.5) || !near(s.H, 0.5) || s.Q != 0 {
		t.Fatalf("renormalize: %+v", s)
	}

	raw := base
	raw.Complement = ComplementRaw
	e := mustNew(t, raw, fraction(0.6))
	if err := e.Step(); err != nil {
		t.Fatal(err)
	}
	if s := e.Last(); !near(s.P, 0.6) || !near(s.H, 0.6) || !near(s.Q, -0.2) {
		t.Fatalf("raw: %+v", s)
	}
}

func TestHeterozygoteFixationDoesNotStop(t *testing.T) {
	calls := 0
	s := sampleFunc(func(n int, _ float64) float64 {
		calls++
		if calls%2 == 1 {
			return 0 // AA
		}
		return float64(n) // Aa
	})
	e := mustNew(t, Params{A0: 0.5, N: 10, Generations: 5}, s)
	if err := e.Step(); err != nil {
		t.Fatal(err)
	}
	if last := e.Last(); last.H != 1 || last.Q != 0 {
		t.Fatalf("expected all heterozygotes, got %+v", last)
	}
	if e.Fixed() || e.Done() {
		t.Fatal("heterozygote-only population must not stop the run")
	}
}

func TestDegenerateMeanFitness(t *testing.T) {
	// Lethal A (s=-1, dominant): after one generation drift leaves only
	// zero-fitness genotypes.
	p := Params{A0: 0.5, N: 10, S: -1, D: 1, Generations: 10}
	e := mustNew(t, p, fraction(0.5))
	tr, err := e.Run()
	if !errors.Is(err, wf.ErrMeanFitness) {
		t.Fatalf("want ErrMeanFitness, got %v", err)
	}
	var se *wf.StepError
	if !errors.As(err, &se) || se.Generation != 2 {
		t.Fatalf("want StepError at generation 2, got %v", err)
	}
	if tr.Len() != 2 {
		t.Fatalf("trajectory should keep completed generations, len=%d", tr.Len())
	}
}

func TestPositiveSelectionMonotone(t *testing.T) {
	p := Params{A0: 0.05, N: 1000, S: 0.3, D: 0.5, Generations: 150}
	tr := mustRun(t, mustNew(t, p, numeric.Expected{}))
	for i := 1; i < tr.Len(); i++ {
		if cur, prev := tr.At(i).A, tr.At(i-1).A; cur < prev-1e-12 {
			t.Fatalf("gen %d: A fell from %v to %v", i, prev, cur)
		}
	}
	if last := tr.Last().A; last < 0.99 {
		t.Fatalf("favoured allele only reached %v", last)
	}
}

func TestFullMutationCycles(t *testing.T) {
	tr := mustRun(t, mustNew(t, Params{A0: 0.25, N: 100, U: 1, Generations: 6}, numeric.Expected{}))
	for i := 0; i < tr.Len(); i++ {
		want := 0.25
		if i%2 == 1 {
			want = 0.75
		}
		if a := tr.At(i).A; !near(a, want) {
			t.Fatalf("gen %d: A=%v want %v", i, a, want)
		}
	}
}

func TestNeutralDriftFree(t *testing.T) {
	tr := mustRun(t, mustNew(t, Params{A0: 0.5, N: 100, Generations: 10}, numeric.Expected{}))
	if tr.Len() != 11 {
		t.Fatalf("len=%d want 11", tr.Len())
	}
	for i := 0; i < tr.Len(); i++ {
		if s := tr.At(i); !near(s.A, 0.5) || !near(s.P, 0.25) || !near(s.H, 0.5) {
			t.Fatalf("gen %d moved: %+v", i, s)
		}
	}
}

func TestUnbiasedDrift(t *testing.T) {
	const runs = 300
	sum := 0.0
	for seed := uint64(1); seed <= runs; seed++ {
		p := Params{A0: 0.5, N: 500, Generations: 20}
		tr := mustRun(t, mustNew(t, p, numeric.NewBinomial(numeric.NewSource(seed))))
		sum += tr.Last().A
	}
	if mean := sum / runs; math.Abs(mean-0.5) > 0.02 {
		t.Fatalf("mean final frequency %v drifted from 0.5", mean)
	}
}

func TestReplay(t *testing.T) {
	p := Params{A0: 0.2, N: 50, S: 0.05, D: 0.3, U: 1e-4, Generations: 80}
	a := mustRun(t, mustNew(t, p, numeric.NewBinomial(numeric.NewSource(77))))
	b := mustRun(t, mustNew(t, p, numeric.NewBinomial(numeric.NewSource(77))))
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("gen %d differs", i)
		}
	}
	ser := SeriesOf(a)
	if len(ser.A) != a.Len() || len(ser.Q) != a.Len() || len(ser.Generation) != a.Len() {
		t.Fatal("series columns have unequal length")
	}
}

func TestInvalidParams(t *testing.T) {
	cases := map[string]Params{
		"n":          {A0: 0.5, N: 0},
		"a0":         {A0: 2, N: 10},
		"u":          {A0: 0.5, N: 10, U: -0.1},
		"d-inf":      {A0: 0.5, N: 10, D: math.Inf(1)},
		"wAA":        {A0: 0.5, N: 10, S: -1.5},
		"wAa":        {A0: 0.5, N: 10, S: 0.5, D: -3},
		"gens":       {A0: 0.5, N: 10, Generations: -2},
		"complement": {A0: 0.5, N: 10, Complement: Complement(9)},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := New(p, numeric.Expected{}); !errors.Is(err, param.ErrInvalidParameter) {
				t.Fatalf("want ErrInvalidParameter, got %v", err)
			}
		})
	}
}
