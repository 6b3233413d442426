// Package calibration composes the imaging and profile primitives into the
// grid-line detection pipeline used to calibrate a camera against a printed
// reference grid.
//
// The pipeline for one frame is: optional region-of-interest crop, Gaussian
// blur, reduction to a 1-D projection profile (inverted luminance or edge
// density), moving-average smoothing, and prominence-based peak finding.
// Surviving peaks are the grid-line positions. Spacing statistics over the
// positions tell the caller whether the target is being seen square-on
// (even spacing) or needs repositioning.
//
// The package also renders profiles with their detected peaks to PNG for
// visual inspection of a calibration run.
package calibration
