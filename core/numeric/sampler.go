package numeric

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws binomial success counts. Engines hold their own Sampler,
// so two engines never share a random stream.
type Sampler interface {
	Binomial(n int, p float64) float64
}

// Binomial samples from a seeded source. Not safe for concurrent use.
type Binomial struct {
	src rand.Source
}

// NewBinomial wraps src. A nil src is replaced by a PCG seeded with 0.
func NewBinomial(src rand.Source) *Binomial {
	if src == nil {
		src = NewSource(0)
	}
	return &Binomial{src: src}
}

// Binomial returns a draw of successes out of n trials with probability p.
// p is clamped first; the degenerate ends are exact.
func (b *Binomial) Binomial(n int, p float64) float64 {
	if n <= 0 {
		return 0
	}
	p = Clamp01(p)
	switch p {
	case 0:
		return 0
	case 1:
		return float64(n)
	}
	d := distuv.Binomial{N: float64(n), P: p, Src: b.src}
	return d.Rand()
}

// Expected is the drift-free sampler: it returns the mean n·p, which is
// what an effectively infinite population converges to.
type Expected struct{}

// Binomial returns n·p with p clamped.
func (Expected) Binomial(n int, p float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n) * Clamp01(p)
}

// NewSource returns a PCG source seeded from a single value.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
