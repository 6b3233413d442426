// Package profile implements 1-D projection profiles and peak analysis for
// grid calibration.
//
// A projection profile reduces a 2-D intensity grid to a sequence of row or
// column sums. Grid lines in the source image show up as peaks (or valleys)
// in that profile, so finding evenly spaced, sufficiently prominent peaks
// recovers the line positions.
//
// The package provides three building blocks:
//
//   - HorizontalProjection / VerticalProjection: grid -> sequence
//   - Smooth: truncated-window moving average over a sequence
//   - FindPeaks: local maxima filtered by topographic prominence and a
//     minimum index distance
//
// All functions are pure and stateless. They operate only on caller-supplied
// data and allocate fresh output, so they are safe to call concurrently on
// independent inputs.
//
// # Error Handling
//
// Malformed parameters (even or non-positive kernel sizes, non-positive peak
// distances, empty required input) are reported by errors wrapping
// ErrInvalidArgument. "No peaks found" is a valid outcome, not an error.
package profile
