package genotype

import (
	"fmt"

	"wfsim-core/param"
)

// Complement decides how aa is derived after AA and Aa are drifted
// independently and their sum overshoots 1.
type Complement int

const (
	// ComplementRenormalize rescales AA and Aa to sum 1 and sets aa to 0
	// when they overshoot. Genotype frequencies always sum to 1.
	ComplementRenormalize Complement = iota

	// ComplementRaw keeps aa = 1 - AA - Aa even when negative. Consumers
	// clamp what they display.
	ComplementRaw
)

func (c Complement) String() string {
	switch c {
	case ComplementRenormalize:
		return "renormalize"
	case ComplementRaw:
		return "raw"
	}
	return fmt.Sprintf("Complement(%d)", int(c))
}

// Params configures one single-locus run.
type Params struct {
	A0          float64 // initial frequency of A
	N           int     // diploid individuals; drift samples N genotypes
	S           float64 // selection coefficient of AA
	D           float64 // dominance: 0 recessive, 1 dominant
	U           float64 // symmetric per-generation mutation rate
	Generations int
	Complement  Complement
}

// Fitness returns wAA, wAa, waa.
func (p Params) Fitness() (wAA, wAa, waa float64) {
	return 1 + p.S, 1 + p.D*p.S, 1
}

// Validate checks every field before any state is built.
func (p Params) Validate() error {
	if p.Complement != ComplementRenormalize && p.Complement != ComplementRaw {
		return &param.Error{Field: "complement", Value: int(p.Complement), Reason: "unknown policy"}
	}
	wAA, wAa, _ := p.Fitness()
	return param.First(
		param.Frequency("a0", p.A0),
		param.PopulationSize("N", p.N),
		param.Finite("s", p.S),
		param.Finite("d", p.D),
		param.Rate("u", p.U),
		param.Generations("generations", p.Generations),
		param.Fitness("wAA", wAA),
		param.Fitness("wAa", wAa),
	)
}
