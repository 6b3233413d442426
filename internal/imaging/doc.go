// Package imaging provides the image-side operations of the calibration
// toolset: loading and caching, grayscale conversion to intensity grids,
// Gaussian blur, Canny edge detection, and region-of-interest cropping.
//
// All operations work with standard Go image.Image types and a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and
// Y increases downward. For regions, (x1,y1) is inclusive and (x2,y2) is
// exclusive.
//
// Conversions to intensity grids use ITU-R BT.601 luminance weights
// (0.299*R + 0.587*G + 0.114*B) scaled to 0-255, the same weighting the
// edge detector uses internally, so grids from LuminanceGrid and edge grids
// from EdgeGrid can feed the same projection code.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Everything else is a
// stateless function over caller-owned input producing fresh output.
package imaging
