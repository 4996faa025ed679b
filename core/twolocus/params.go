package twolocus

import (
	"fmt"

	"wfsim-core/param"
)

// Selection picks the selection recurrence applied at the start of a step.
type Selection int

const (
	// SelectionMarginal reweights each marginal by the fitness of every
	// haplotype carrying that allele. With no selection it leaves a and b
	// unchanged.
	SelectionMarginal Selection = iota

	// SelectionLegacy applies single-haplotype selection shares,
	// updating b first and then a against the already-updated b.
	SelectionLegacy
)

func (s Selection) String() string {
	switch s {
	case SelectionMarginal:
		return "marginal"
	case SelectionLegacy:
		return "legacy"
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}

// Params configures one two-locus run.
type Params struct {
	A0, B0      float64 // initial frequencies of A and B
	N           int     // diploid individuals; drift samples 2N gene copies per locus
	SA, SB      float64 // selection coefficients for A and B
	U           float64 // symmetric per-generation mutation rate
	Generations int     // cap on steps taken by Run
	Selection   Selection
}

// Fitness returns the relative fitness constants wab, w0a, w0b, w00.
func (p Params) Fitness() (wab, w0a, w0b, w00 float64) {
	return 1 + p.SA*p.SB, 1 + p.SA, 1 + p.SB, 1
}

// Validate checks every field; it does not bound selection beyond keeping
// fitness non-negative.
func (p Params) Validate() error {
	wab, w0a, w0b, _ := p.Fitness()
	if p.Selection != SelectionMarginal && p.Selection != SelectionLegacy {
		return &param.Error{Field: "selection", Value: int(p.Selection), Reason: "unknown recurrence"}
	}
	return param.First(
		param.Frequency("a0", p.A0),
		param.Frequency("b0", p.B0),
		param.PopulationSize("N", p.N),
		param.Finite("sa", p.SA),
		param.Finite("sb", p.SB),
		param.Rate("u", p.U),
		param.Generations("generations", p.Generations),
		param.Fitness("wab", wab),
		param.Fitness("w0a", w0a),
		param.Fitness("w0b", w0b),
	)
}
