// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"time"

	"wfsim-core/numeric"
)

// ResolveSeed returns seed unchanged when set. A zero seed is replaced by
// one derived from now; the result is never zero so it can be replayed
// with --seed.
func ResolveSeed(seed uint64, now func() time.Time) uint64 {
	if seed != 0 {
		return seed
	}
	s := uint64(now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}

// NewSampler picks the drift sampler for a run. Each call returns an
// independent stream.
func NewSampler(noDrift bool, seed uint64) numeric.Sampler {
	if noDrift {
		return numeric.Expected{}
	}
	return numeric.NewBinomial(numeric.NewSource(seed))
}

// Range is a customary interval for one flag. Values outside it are legal
// but unusual enough to warn about.
type Range struct {
	Flag   string
	Value  float64
	Lo, Hi float64
}

// Customary parameter intervals.
var (
	FrequencyRange  = [2]float64{0.01, 0.99}
	SelectionRange  = [2]float64{-0.4, 0.4}
	MutationRange   = [2]float64{0, 0.5}
	GenerationRange = [2]float64{0, 500}
)

// In builds a Range from one of the customary intervals.
func In(flag string, v float64, r [2]float64) Range {
	return Range{Flag: flag, Value: v, Lo: r[0], Hi: r[1]}
}

// RangeWarnings returns one message per value outside its range.
func RangeWarnings(rs ...Range) []string {
	var warns []string
	for _, r := range rs {
		if r.Value < r.Lo || r.Value > r.Hi {
			warns = append(warns, fmt.Sprintf("--%s=%g is outside the customary range [%g, %g]", r.Flag, r.Value, r.Lo, r.Hi))
		}
	}
	return warns
}
