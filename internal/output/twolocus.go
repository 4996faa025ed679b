package output

import (
	"wfsim-core/numeric"
	"wfsim-core/twolocus"
	"wfsim-core/wf"
	"wfsim/pkg/api"
)

// FormatTwoLocusRow renders one TSV row matching TwoLocusTSVHeader.
func FormatTwoLocusRow(s twolocus.Snapshot) string {
	h := s.Haplotypes
	return Row(s.Generation, s.A, s.B, s.AB, h.AB, h.AOnly, h.BOnly, h.Neither)
}

// ToAPITwoLocusSnapshot converts a snapshot to the JSONL wire schema (v1).
func ToAPITwoLocusSnapshot(runID string, s twolocus.Snapshot) api.TwoLocusSnapshotV1 {
	h := s.Haplotypes
	return api.TwoLocusSnapshotV1{
		RunID:      runID,
		Generation: s.Generation,
		A:          numeric.Clamp01(s.A),
		B:          numeric.Clamp01(s.B),
		AB:         numeric.Clamp01(s.AB),
		HapBoth:    numeric.Clamp01(h.AB),
		HapAOnly:   numeric.Clamp01(h.AOnly),
		HapBOnly:   numeric.Clamp01(h.BOnly),
		HapNeither: numeric.Clamp01(h.Neither),
	}
}

func twoLocusFixed(s twolocus.Snapshot) bool {
	at := func(x float64) bool { return x == 0 || x == 1 }
	return at(s.A) && at(s.B)
}

// ToAPITwoLocusRun builds the whole-run document.
func ToAPITwoLocusRun(m RunMeta, p twolocus.Params, snaps []twolocus.Snapshot) api.TwoLocusRunV1 {
	tr := wf.NewTrajectory(snaps)
	ser := twolocus.SeriesOf(tr)
	return api.TwoLocusRunV1{
		RunV1: api.RunV1{
			RunID:       m.RunID,
			Model:       api.ModelTwoLocus,
			Seed:        m.Seed,
			Drift:       m.Drift,
			Generations: tr.Len() - 1,
			Fixed:       tr.Len() > 0 && twoLocusFixed(tr.Last()),
		},
		Params: api.TwoLocusParamsV1{
			A0: p.A0, B0: p.B0, N: p.N, SA: p.SA, SB: p.SB, U: p.U,
			GenerationCap: p.Generations,
			Selection:     p.Selection.String(),
		},
		Series: api.TwoLocusSeriesV1{
			Generation: ser.Generation,
			A:          clampAll(ser.A),
			B:          clampAll(ser.B),
			AB:         clampAll(ser.AB),
			HapBoth:    clampAll(ser.Both),
			HapAOnly:   clampAll(ser.AOnly),
			HapBOnly:   clampAll(ser.BOnly),
			HapNeither: clampAll(ser.Neither),
		},
	}
}

// TwoLocusCodec wires the two-locus presentations for one run.
func TwoLocusCodec(m RunMeta, p twolocus.Params) Codec[twolocus.Snapshot] {
	return Codec[twolocus.Snapshot]{
		Header: TwoLocusTSVHeader,
		Row:    FormatTwoLocusRow,
		Line:   func(s twolocus.Snapshot) any { return ToAPITwoLocusSnapshot(m.RunID, s) },
		Document: func(snaps []twolocus.Snapshot) any {
			return ToAPITwoLocusRun(m, p, snaps)
		},
	}
}

func clampAll(xs []float64) []float64 {
	for i, x := range xs {
		xs[i] = numeric.Clamp01(x)
	}
	return xs
}
