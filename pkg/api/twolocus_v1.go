package api

// TwoLocusParamsV1 echoes the parameters of a two-locus run.
type TwoLocusParamsV1 struct {
	A0            float64 `json:"a0"`
	B0            float64 `json:"b0"`
	N             int     `json:"n"`
	SA            float64 `json:"sa"`
	SB            float64 `json:"sb"`
	U             float64 `json:"u"`
	GenerationCap int     `json:"generation_cap"`
	Selection     string  `json:"selection"` // "marginal" | "legacy"
}

// TwoLocusSeriesV1 holds parallel columns, one entry per generation.
type TwoLocusSeriesV1 struct {
	Generation []int     `json:"generation"`
	A          []float64 `json:"a"`
	B          []float64 `json:"b"`
	AB         []float64 `json:"ab"`
	HapBoth    []float64 `json:"hap_both"`
	HapAOnly   []float64 `json:"hap_a_only"`
	HapBOnly   []float64 `json:"hap_b_only"`
	HapNeither []float64 `json:"hap_neither"`
}

// TwoLocusRunV1 is the full JSON document for --output json.
type TwoLocusRunV1 struct {
	RunV1
	Params TwoLocusParamsV1 `json:"params"`
	Series TwoLocusSeriesV1 `json:"series"`
}

// TwoLocusSnapshotV1 is one JSONL record.
type TwoLocusSnapshotV1 struct {
	RunID      string  `json:"run_id"`
	Generation int     `json:"generation"`
	A          float64 `json:"a"`
	B          float64 `json:"b"`
	AB         float64 `json:"ab"`
	HapBoth    float64 `json:"hap_both"`
	HapAOnly   float64 `json:"hap_a_only"`
	HapBOnly   float64 `json:"hap_b_only"`
	HapNeither float64 `json:"hap_neither"`
}
