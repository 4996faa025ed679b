package genotype

import "wfsim-core/wf"

// Snapshot holds genotype frequencies using the usual P/H/Q notation.
type Snapshot struct {
	Generation int
	A          float64 // allele frequency, P + H/2
	P          float64 // AA
	H          float64 // Aa
	Q          float64 // aa
}

func snapshot(gen int, p, h, q float64) Snapshot {
	return Snapshot{Generation: gen, A: p + h/2, P: p, H: h, Q: q}
}

// Sum adds the three genotype frequencies.
func (s Snapshot) Sum() float64 { return s.P + s.H + s.Q }

// Series is a trajectory split into parallel columns of equal length.
type Series struct {
	Generation []int
	A          []float64
	P          []float64
	H          []float64
	Q          []float64
}

// SeriesOf splits tr into columns.
func SeriesOf(tr wf.Trajectory[Snapshot]) Series {
	return Series{
		Generation: wf.Column(tr, func(s Snapshot) int { return s.Generation }),
		A:          wf.Column(tr, func(s Snapshot) float64 { return s.A }),
		P:          wf.Column(tr, func(s Snapshot) float64 { return s.P }),
		H:          wf.Column(tr, func(s Snapshot) float64 { return s.H }),
		Q:          wf.Column(tr, func(s Snapshot) float64 { return s.Q }),
	}
}
