package api

// GenotypeParamsV1 echoes the parameters of a single-locus run.
type GenotypeParamsV1 struct {
	A0            float64 `json:"a0"`
	N             int     `json:"n"`
	S             float64 `json:"s"`
	D             float64 `json:"d"`
	U             float64 `json:"u"`
	GenerationCap int     `json:"generation_cap"`
	Complement    string  `json:"complement"` // "renormalize" | "raw"
}

// GenotypeSeriesV1 holds parallel columns, one entry per generation.
// Genotype keys carry a P/H/Q prefix so they stay distinct under
// case-insensitive decoders.
type GenotypeSeriesV1 struct {
	Generation []int     `json:"generation"`
	A          []float64 `json:"freq_A"`
	P          []float64 `json:"p_AA"`
	H          []float64 `json:"h_Aa"`
	Q          []float64 `json:"q_aa"`
}

// GenotypeRunV1 is the full JSON document for --output json.
type GenotypeRunV1 struct {
	RunV1
	Params GenotypeParamsV1 `json:"params"`
	Series GenotypeSeriesV1 `json:"series"`
}

// GenotypeSnapshotV1 is one JSONL record.
type GenotypeSnapshotV1 struct {
	RunID      string  `json:"run_id"`
	Generation int     `json:"generation"`
	A          float64 `json:"freq_A"`
	P          float64 `json:"p_AA"`
	H          float64 `json:"h_Aa"`
	Q          float64 `json:"q_aa"`
}
