package output

import (
	"wfsim-core/genotype"
	"wfsim-core/numeric"
	"wfsim-core/wf"
	"wfsim/pkg/api"
)

// FormatGenotypeRow renders one TSV row matching GenotypeTSVHeader.
func FormatGenotypeRow(s genotype.Snapshot) string {
	return Row(s.Generation, s.A, s.P, s.H, s.Q)
}

// ToAPIGenotypeSnapshot converts a snapshot to the JSONL wire schema (v1).
func ToAPIGenotypeSnapshot(runID string, s genotype.Snapshot) api.GenotypeSnapshotV1 {
	return api.GenotypeSnapshotV1{
		RunID:      runID,
		Generation: s.Generation,
		A:          numeric.Clamp01(s.A),
		P:          numeric.Clamp01(s.P),
		H:          numeric.Clamp01(s.H),
		Q:          numeric.Clamp01(s.Q),
	}
}

// ToAPIGenotypeRun builds the whole-run document.
func ToAPIGenotypeRun(m RunMeta, p genotype.Params, snaps []genotype.Snapshot) api.GenotypeRunV1 {
	tr := wf.NewTrajectory(snaps)
	ser := genotype.SeriesOf(tr)
	last := tr.Last()
	return api.GenotypeRunV1{
		RunV1: api.RunV1{
			RunID:       m.RunID,
			Model:       api.ModelGenotype,
			Seed:        m.Seed,
			Drift:       m.Drift,
			Generations: tr.Len() - 1,
			Fixed:       tr.Len() > 0 && (last.P == 1 || last.Q == 1),
		},
		Params: api.GenotypeParamsV1{
			A0: p.A0, N: p.N, S: p.S, D: p.D, U: p.U,
			GenerationCap: p.Generations,
			Complement:    p.Complement.String(),
		},
		Series: api.GenotypeSeriesV1{
			Generation: ser.Generation,
			A:          clampAll(ser.A),
			P:          clampAll(ser.P),
			H:          clampAll(ser.H),
			Q:          clampAll(ser.Q),
		},
	}
}

// GenotypeCodec wires the single-locus presentations for one run.
func GenotypeCodec(m RunMeta, p genotype.Params) Codec[genotype.Snapshot] {
	return Codec[genotype.Snapshot]{
		Header: GenotypeTSVHeader,
		Row:    FormatGenotypeRow,
		Line:   func(s genotype.Snapshot) any { return ToAPIGenotypeSnapshot(m.RunID, s) },
		Document: func(snaps []genotype.Snapshot) any {
			return ToAPIGenotypeRun(m, p, snaps)
		},
	}
}
