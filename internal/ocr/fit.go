package ocr

import (
	"fmt"
	"math"

	"github.com/tidewatch/calib-tools-mcp/internal/profile"
)

// Axis selects which coordinate of a label center maps onto the scale:
// AxisX for labels running along the top or bottom edge (vertical grid
// lines), AxisY for labels along the side.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// ScaleResult is a linear pixel-to-physical mapping fitted from scale
// labels: physical = UnitsPerPixel*pixel + Offset.
type ScaleResult struct {
	UnitsPerPixel float64 `json:"units_per_pixel"`
	Offset        float64 `json:"offset"`

	// Unit is the unit of the fitted values, empty when the labels carried
	// no unit.
	Unit string `json:"unit,omitempty"`

	// LabelsUsed is the number of labels that went into the fit.
	LabelsUsed int `json:"labels_used"`
}

// FitScale fits physical = a*pixel + b by least squares and returns a and
// b. At least two distinct pixel positions are required.
func FitScale(pixels, values []float64) (unitsPerPixel, offset float64, err error) {
	if len(pixels) != len(values) {
		return 0, 0, fmt.Errorf("%w: %d pixel positions for %d values", profile.ErrInvalidArgument, len(pixels), len(values))
	}
	if len(pixels) < 2 {
		return 0, 0, fmt.Errorf("%w: need at least two labels to fit a scale", profile.ErrInvalidArgument)
	}

	n := float64(len(pixels))
	var sumX, sumY, sumXX, sumXY float64
	for i := range pixels {
		sumX += pixels[i]
		sumY += values[i]
		sumXX += pixels[i] * pixels[i]
		sumXY += pixels[i] * values[i]
	}

	denom := n*sumXX - sumX*sumX
	if math.Abs(denom) < 1e-12 {
		return 0, 0, fmt.Errorf("%w: labels share a single pixel position", profile.ErrInvalidArgument)
	}

	unitsPerPixel = (n*sumXY - sumX*sumY) / denom
	offset = (sumY - unitsPerPixel*sumX) / n
	return unitsPerPixel, offset, nil
}

// ScaleFromLabels fits a pixel-to-physical mapping from recognized labels
// along the given axis. Labels disagreeing with the majority unit are
// dropped before fitting.
func ScaleFromLabels(labels []ScaleLabel, axis Axis) (*ScaleResult, error) {
	if axis != AxisX && axis != AxisY {
		return nil, fmt.Errorf("%w: unknown axis %q", profile.ErrInvalidArgument, axis)
	}

	unit := majorityUnit(labels)

	var pixels, values []float64
	for _, l := range labels {
		if l.Unit != unit {
			continue
		}
		if axis == AxisX {
			pixels = append(pixels, float64(l.CenterX))
		} else {
			pixels = append(pixels, float64(l.CenterY))
		}
		values = append(values, l.Value)
	}

	unitsPerPixel, offset, err := FitScale(pixels, values)
	if err != nil {
		return nil, err
	}

	return &ScaleResult{
		UnitsPerPixel: unitsPerPixel,
		Offset:        offset,
		Unit:          unit,
		LabelsUsed:    len(pixels),
	}, nil
}

func majorityUnit(labels []ScaleLabel) string {
	counts := make(map[string]int)
	for _, l := range labels {
		counts[l.Unit]++
	}
	best := ""
	bestCount := -1
	for unit, count := range counts {
		if count > bestCount || (count == bestCount && unit < best) {
			best = unit
			bestCount = count
		}
	}
	return best
}
