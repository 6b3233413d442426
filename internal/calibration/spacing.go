package calibration

import (
	"math"
	"sort"
)

// uniformityTolerance is the maximum gap standard deviation, as a fraction
// of the mean gap, for spacing to count as uniform.
const uniformityTolerance = 0.1

// SpacingStats summarizes the gaps between consecutive grid-line positions.
// A square-on view of an evenly printed grid has uniform gaps; perspective
// skew or a partly detected grid shows up as spread.
type SpacingStats struct {
	// Gaps is the number of gaps measured (one less than the line count).
	Gaps int `json:"gaps"`

	// MeanGap and MedianGap are in pixels.
	MeanGap   float64 `json:"mean_gap"`
	MedianGap float64 `json:"median_gap"`

	// StdDev is the population standard deviation of the gaps.
	StdDev float64 `json:"std_dev"`

	// Uniform reports whether StdDev is within 10% of MeanGap.
	Uniform bool `json:"uniform"`
}

// MeasureSpacing computes gap statistics over ascending line positions.
// Returns nil when fewer than two positions are supplied.
func MeasureSpacing(positions []int) *SpacingStats {
	if len(positions) < 2 {
		return nil
	}

	gaps := make([]float64, len(positions)-1)
	var sum float64
	for i := 1; i < len(positions); i++ {
		gaps[i-1] = float64(positions[i] - positions[i-1])
		sum += gaps[i-1]
	}
	mean := sum / float64(len(gaps))

	var variance float64
	for _, g := range gaps {
		d := g - mean
		variance += d * d
	}
	stdDev := math.Sqrt(variance / float64(len(gaps)))

	sorted := make([]float64, len(gaps))
	copy(sorted, gaps)
	sort.Float64s(sorted)
	var median float64
	if len(sorted)%2 == 1 {
		median = sorted[len(sorted)/2]
	} else {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	}

	return &SpacingStats{
		Gaps:      len(gaps),
		MeanGap:   math.Round(mean*100) / 100,
		MedianGap: median,
		StdDev:    math.Round(stdDev*100) / 100,
		Uniform:   stdDev <= uniformityTolerance*mean,
	}
}
