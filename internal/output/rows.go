// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"wfsim-core/numeric"
)

// Freq formats a frequency for display. Values are clamped to [0,1] so
// rounding residue never shows up as a negative frequency.
func Freq(x float64) string {
	return strconv.FormatFloat(numeric.Clamp01(x), 'g', -1, 64)
}

// Row joins a generation index and frequencies with tabs.
func Row(gen int, xs ...float64) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(gen))
	for _, x := range xs {
		b.WriteByte('\t')
		b.WriteString(Freq(x))
	}
	return b.String()
}
