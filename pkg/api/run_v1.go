// pkg/api/run_v1.go
package api

// Models reported in RunV1.Model.
const (
	ModelTwoLocus = "two-locus"
	ModelGenotype = "genotype"
)

// RunV1 is the metadata block shared by every JSON document.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RunV1 struct {
	RunID       string `json:"run_id"`
	Model       string `json:"model"`
	Seed        uint64 `json:"seed"`
	Drift       bool   `json:"drift"`
	Generations int    `json:"generations"` // last generation recorded
	Fixed       bool   `json:"fixed"`
}
