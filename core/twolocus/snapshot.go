package twolocus

import (
	"wfsim-core/numeric"
	"wfsim-core/wf"
)

// Haplotypes are the four gamete classes: the linkage-equilibrium
// decomposition of (A, B) under either selection mode. They sum to 1.
type Haplotypes struct {
	AB      float64 // both A and B
	AOnly   float64 // Ab
	BOnly   float64 // aB
	Neither float64 // ab
}

// Snapshot is the state after one generation.
type Snapshot struct {
	Generation int
	A          float64
	B          float64
	AB         float64 // joint frequency; A·B after every step
	Haplotypes Haplotypes
}

func snapshot(gen int, a, b, ab float64) Snapshot {
	ca, cb := numeric.Clamp01(a), numeric.Clamp01(b)
	return Snapshot{
		Generation: gen, A: a, B: b, AB: ab,
		Haplotypes: Haplotypes{
			AB:      ca * cb,
			AOnly:   ca * (1 - cb),
			BOnly:   (1 - ca) * cb,
			Neither: (1 - ca) * (1 - cb),
		},
	}
}

// Sum adds the four haplotype frequencies.
func (h Haplotypes) Sum() float64 { return h.AB + h.AOnly + h.BOnly + h.Neither }

// Series is a trajectory split into parallel columns of equal length.
type Series struct {
	Generation []int
	A          []float64
	B          []float64
	AB         []float64
	Both       []float64
	AOnly      []float64
	BOnly      []float64
	Neither    []float64
}

// SeriesOf splits tr into columns.
func SeriesOf(tr wf.Trajectory[Snapshot]) Series {
	return Series{
		Generation: wf.Column(tr, func(s Snapshot) int { return s.Generation }),
		A:          wf.Column(tr, func(s Snapshot) float64 { return s.A }),
		B:          wf.Column(tr, func(s Snapshot) float64 { return s.B }),
		AB:         wf.Column(tr, func(s Snapshot) float64 { return s.AB }),
		Both:       wf.Column(tr, func(s Snapshot) float64 { return s.Haplotypes.AB }),
		AOnly:      wf.Column(tr, func(s Snapshot) float64 { return s.Haplotypes.AOnly }),
		BOnly:      wf.Column(tr, func(s Snapshot) float64 { return s.Haplotypes.BOnly }),
		Neither:    wf.Column(tr, func(s Snapshot) float64 { return s.Haplotypes.Neither }),
	}
}
