package numeric

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-1e-17, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1 + 1e-15, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Errorf("Clamp01(%v)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	xs := []float64{0.6, 0.6, -0.01}
	Normalize(xs)
	if xs[0] != 0.5 || xs[1] != 0.5 || xs[2] != 0 {
		t.Fatalf("got %v, want [0.5 0.5 0]", xs)
	}
	if !SumsToOne(1e-12, xs...) {
		t.Fatalf("normalized weights do not sum to 1: %v", xs)
	}

	zero := []float64{0, 0}
	Normalize(zero)
	if zero[0] != 0 || zero[1] != 0 {
		t.Fatalf("all-zero input changed: %v", zero)
	}
}

func TestMutateBounds(t *testing.T) {
	if got := Mutate(0.3, 0); got != 0.3 {
		t.Errorf("u=0 should be identity, got %v", got)
	}
	if got := Mutate(0.25, 1); got != 0.75 {
		t.Errorf("u=1 should flip to complement, got %v", got)
	}
	if got := Mutate(0.2, 0.5); math.Abs(got-0.5) > 1e-15 {
		t.Errorf("u=0.5 should land on 0.5, got %v", got)
	}
}

func TestBinomialDegenerateEnds(t *testing.T) {
	b := NewBinomial(NewSource(1))
	if got := b.Binomial(200, 0); got != 0 {
		t.Errorf("p=0: got %v", got)
	}
	if got := b.Binomial(200, 1); got != 200 {
		t.Errorf("p=1: got %v", got)
	}
	if got := b.Binomial(200, 1.0000001); got != 200 {
		t.Errorf("p>1 should clamp, got %v", got)
	}
	if got := b.Binomial(0, 0.5); got != 0 {
		t.Errorf("n=0: got %v", got)
	}
}

func TestBinomialRangeAndReplay(t *testing.T) {
	a := NewBinomial(NewSource(42))
	b := NewBinomial(NewSource(42))
	for i := 0; i < 500; i++ {
		x := a.Binomial(200, 0.37)
		y := b.Binomial(200, 0.37)
		if x != y {
			t.Fatalf("draw %d differs for equal seeds: %v vs %v", i, x, y)
		}
		if x < 0 || x > 200 || x != math.Trunc(x) {
			t.Fatalf("draw %d out of range or non-integer: %v", i, x)
		}
	}
}

func TestBinomialMean(t *testing.T) {
	b := NewBinomial(NewSource(7))
	const (
		n    = 1000
		p    = 0.3
		runs = 4000
	)
	sum := 0.0
	for i := 0; i < runs; i++ {
		sum += b.Binomial(n, p)
	}
	mean := sum / runs
	// sd of the mean is sqrt(n p (1-p) / runs) ≈ 0.23
	if math.Abs(mean-n*p) > 2 {
		t.Fatalf("sample mean %v too far from %v", mean, n*p)
	}
}

func TestExpected(t *testing.T) {
	var e Expected
	if got := e.Binomial(200, 0.5); got != 100 {
		t.Errorf("got %v want 100", got)
	}
	if got := e.Binomial(200, -0.2); got != 0 {
		t.Errorf("negative p should clamp, got %v", got)
	}
}
