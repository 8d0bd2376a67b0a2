package pattern

import "github.com/iburimskiy/spectral-circles/internal/config"

// BinCount returns the spectrum resolution for n patterns: the smallest power
// of two that is at least config.MinBins and at least n, capped at
// config.MaxBins.
func BinCount(n int) int {
	bins := config.MinBins
	for bins < n && bins < config.MaxBins {
		bins *= 2
	}
	return bins
}

// Energy returns spectrum[i], or 0 when i has no bin.
func Energy(spectrum []float64, i int) float64 {
	if i < 0 || i >= len(spectrum) {
		return 0
	}
	return spectrum[i]
}
