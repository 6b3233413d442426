package calibration

import (
	"fmt"
	"image"

	"github.com/tidewatch/calib-tools-mcp/internal/imaging"
	"github.com/tidewatch/calib-tools-mcp/internal/profile"
)

// Direction selects which grid lines to look for. Vertical lines produce
// peaks in the per-column profile, horizontal lines in the per-row profile.
type Direction string

const (
	Vertical   Direction = "vertical"
	Horizontal Direction = "horizontal"
)

// Source selects what the projection profile measures.
type Source string

const (
	// SourceDarkness projects inverted luminance: dark lines on a light
	// background become peaks. The default, and the right choice for a
	// printed calibration grid.
	SourceDarkness Source = "darkness"

	// SourceEdges projects Canny edge density: each column (or row) counts
	// its edge pixels. Works when lines contrast poorly but still produce
	// clean edges.
	SourceEdges Source = "edges"

	// SourceLuminance projects raw luminance. Not useful for detecting
	// dark lines (they show as valleys), but handy for inspecting
	// illumination falloff across the frame with ProjectionProfile.
	SourceLuminance Source = "luminance"
)

// Options controls the grid-line detection pipeline. The zero value is not
// usable directly; call withDefaults or rely on DetectGridLines to fill in
// defaults.
type Options struct {
	// Direction of the grid lines to detect. Default Vertical.
	Direction Direction `json:"direction"`

	// Source of the projection profile. Default SourceDarkness.
	Source Source `json:"source"`

	// BlurKernel is the Gaussian pre-blur kernel size (odd, 1 disables).
	// Only used with SourceDarkness; the edge detector blurs internally.
	// Default 5.
	BlurKernel int `json:"blur_kernel"`

	// SmoothKernel is the profile smoothing kernel size (odd, 1 disables).
	// Default 7.
	SmoothKernel int `json:"smooth_kernel"`

	// MinDistance is the minimum spacing between detected lines in pixels.
	// Default 10.
	MinDistance int `json:"min_distance"`

	// MinProminence is the minimum peak prominence, in mean-intensity units
	// (0-255) for SourceDarkness or mean edge density (0-1) for
	// SourceEdges. Default 10 for darkness, 0.05 for edges.
	MinProminence float64 `json:"min_prominence"`

	// EdgeThresholdLow and EdgeThresholdHigh are the Canny thresholds for
	// SourceEdges. Defaults 50 and 150.
	EdgeThresholdLow  int `json:"edge_threshold_low"`
	EdgeThresholdHigh int `json:"edge_threshold_high"`

	// ROI restricts detection to a region of the frame. Nil means the full
	// frame. Reported positions stay relative to the ROI origin.
	ROI *imaging.Region `json:"roi,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.Direction == "" {
		o.Direction = Vertical
	}
	if o.Source == "" {
		o.Source = SourceDarkness
	}
	if o.BlurKernel == 0 {
		o.BlurKernel = 5
	}
	if o.SmoothKernel == 0 {
		o.SmoothKernel = 7
	}
	if o.MinDistance == 0 {
		o.MinDistance = 10
	}
	if o.MinProminence == 0 {
		if o.Source == SourceEdges {
			o.MinProminence = 0.05
		} else {
			o.MinProminence = 10
		}
	}
	if o.EdgeThresholdLow == 0 {
		o.EdgeThresholdLow = 50
	}
	if o.EdgeThresholdHigh == 0 {
		o.EdgeThresholdHigh = 150
	}
	return o
}

// GridLinesResult contains the detected grid lines for one frame.
type GridLinesResult struct {
	// Direction and Source echo the effective pipeline settings.
	Direction Direction `json:"direction"`
	Source    Source    `json:"source"`

	// Positions are the detected line positions in ascending pixel order:
	// column indices for vertical lines, row indices for horizontal lines.
	Positions []int `json:"positions"`

	// Heights are the smoothed profile values at each position.
	Heights []float64 `json:"heights"`

	// Count is len(Positions).
	Count int `json:"count"`

	// Profile is the smoothed projection profile the peaks were found in.
	Profile []float64 `json:"profile"`

	// Spacing summarizes the gaps between consecutive lines. Nil when
	// fewer than two lines were found.
	Spacing *SpacingStats `json:"spacing,omitempty"`
}

// DetectGridLines runs the calibration pipeline on one frame and returns
// the detected grid-line positions.
//
// A frame with no detectable lines yields an empty result, not an error.
// Errors indicate malformed options or a degenerate (empty) frame region.
func DetectGridLines(img image.Image, opts Options) (*GridLinesResult, error) {
	opts = opts.withDefaults()

	smoothed, err := buildProfile(img, opts)
	if err != nil {
		return nil, err
	}

	result := &GridLinesResult{
		Direction: opts.Direction,
		Source:    opts.Source,
		Positions: []int{},
		Heights:   []float64{},
		Profile:   smoothed,
	}
	if len(smoothed) == 0 {
		return result, nil
	}

	peaks, err := profile.FindPeaks(smoothed, opts.MinDistance, opts.MinProminence)
	if err != nil {
		return nil, err
	}

	result.Positions = peaks
	result.Count = len(peaks)
	result.Heights = make([]float64, len(peaks))
	for i, p := range peaks {
		result.Heights[i] = smoothed[p]
	}
	result.Spacing = MeasureSpacing(peaks)

	return result, nil
}

// ProfileResult contains a projection profile built from one frame.
type ProfileResult struct {
	Direction Direction `json:"direction"`
	Source    Source    `json:"source"`
	Length    int       `json:"length"`
	Values    []float64 `json:"values"`
}

// ProjectionProfile builds the smoothed projection profile for one frame
// without running peak detection. It honors the same Options fields as
// DetectGridLines (Direction, Source, BlurKernel, SmoothKernel, ROI, edge
// thresholds); set SmoothKernel to 1 for the raw projection.
func ProjectionProfile(img image.Image, opts Options) (*ProfileResult, error) {
	opts = opts.withDefaults()

	values, err := buildProfile(img, opts)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{
		Direction: opts.Direction,
		Source:    opts.Source,
		Length:    len(values),
		Values:    values,
	}, nil
}

// buildProfile runs the pipeline through smoothing: ROI crop, source grid,
// mean projection, moving average. opts must already have defaults applied.
func buildProfile(img image.Image, opts Options) ([]float64, error) {
	if opts.Direction != Vertical && opts.Direction != Horizontal {
		return nil, fmt.Errorf("%w: unknown direction %q", profile.ErrInvalidArgument, opts.Direction)
	}

	if opts.ROI != nil {
		cropped, err := imaging.CropImage(img, *opts.ROI)
		if err != nil {
			return nil, err
		}
		img = cropped
	}

	var grid profile.Grid
	switch opts.Source {
	case SourceEdges:
		grid = imaging.EdgeGrid(img, opts.EdgeThresholdLow, opts.EdgeThresholdHigh)
	case SourceDarkness, SourceLuminance:
		blurred, err := imaging.GaussianBlurImage(img, opts.BlurKernel)
		if err != nil {
			return nil, err
		}
		if opts.Source == SourceLuminance {
			grid = imaging.LuminanceGrid(blurred)
		} else {
			grid = imaging.DarknessGrid(blurred)
		}
	default:
		return nil, fmt.Errorf("%w: unknown source %q", profile.ErrInvalidArgument, opts.Source)
	}

	seq := projectMean(grid, opts.Direction)

	return profile.Smooth(seq, opts.SmoothKernel)
}

// projectMean reduces the grid along the axis orthogonal to the requested
// line direction and normalizes the sums to means, so prominence thresholds
// are in per-pixel units regardless of frame size.
func projectMean(g profile.Grid, dir Direction) []float64 {
	var seq []float64
	var denom float64
	if dir == Vertical {
		seq = profile.VerticalProjection(g)
		denom = float64(g.Rows())
	} else {
		seq = profile.HorizontalProjection(g)
		denom = float64(g.Cols())
	}
	if denom == 0 {
		return seq
	}
	for i := range seq {
		seq[i] /= denom
	}
	return seq
}
