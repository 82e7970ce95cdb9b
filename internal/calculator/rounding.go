// Package calculator implements GPA arithmetic: validating subject input,
// weighting grades by credit, and re-aggregating stored semester totals.
// Everything here is pure; persistence lives in the gradebook package.
package calculator

import (
	"math"
	"strconv"
)

// ZeroGPA is reported when there are no credits to divide by.
const ZeroGPA = "0.00"

// Round2 rounds half up at the second decimal.
func Round2(v float64) float64 {
	// The explicit conversion stops the compiler from fusing the
	// multiply-add, which would change results at .xx5 boundaries.
	return math.Floor(float64(v*100)+0.5) / 100
}

// FormatGPA renders v with exactly two decimals.
func FormatGPA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// weightedAverage returns the rounded, formatted weighted/credits ratio, or
// ZeroGPA when credits is zero.
func weightedAverage(weighted, credits float64) string {
	if credits == 0 {
		return ZeroGPA
	}
	return FormatGPA(Round2(weighted / credits))
}
