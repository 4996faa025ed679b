package output

// TSV headers are the single source of truth for text column order.
const (
	TwoLocusTSVHeader = "generation\ta\tb\tab\thap_AB\thap_Ab\thap_aB\thap_ab"
	GenotypeTSVHeader = "generation\tfreq_A\tAA\tAa\taa"
)

// RunMeta describes one run for JSON consumers.
type RunMeta struct {
	RunID string
	Seed  uint64
	Drift bool
}

// Codec bundles every presentation of one snapshot type.
//   - Row: one TSV line without newline
//   - Line: the JSONL wire value
//   - Document: the wire value for a whole run (--output json)
type Codec[T any] struct {
	Header   string
	Row      func(T) string
	Line     func(T) any
	Document func([]T) any
}
