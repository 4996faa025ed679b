// core/numeric/numeric.go
// Small numeric helpers shared by both drift engines.
//
// This package has no app/output deps; engines import it cleanly.

package numeric

import "math"

// Clamp01 limits x to [0,1]. NaN maps to 0.
func Clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// Normalize scales non-negative weights in place so they sum to 1.
// Negative entries are treated as 0. An all-zero input is left unchanged.
func Normalize(xs []float64) {
	sum := 0.0
	for i, x := range xs {
		if x < 0 || math.IsNaN(x) {
			xs[i] = 0
			continue
		}
		sum += x
	}
	if sum == 0 {
		return
	}
	for i := range xs {
		xs[i] /= sum
	}
}

// SumsToOne reports whether xs add up to 1 within tol.
func SumsToOne(tol float64, xs ...float64) bool {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return math.Abs(sum-1) <= tol
}

// Mutate moves a frequency toward its complement at symmetric rate u.
func Mutate(x, u float64) float64 {
	return (1-u)*x + u*(1-x)
}
