package calc

import "math"

// round2 rounds to 2 decimal places, half away from zero. All monetary
// and percentage outputs go through this before leaving the package.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
