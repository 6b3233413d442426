package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/tidewatch/calib-tools-mcp/internal/profile"
)

// EdgeDetectResult contains an edge-detected image encoded as base64 PNG.
// The image is grayscale with edges marked in white (255).
type EdgeDetectResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	EdgePixels  int    `json:"edge_pixels"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EdgeDetect performs Canny edge detection and returns the binary edge
// image as base64 PNG.
//
// thresholdLow and thresholdHigh are gradient magnitudes on the 0-255
// intensity scale. Pixels above thresholdHigh are strong edges and always
// kept; pixels between the thresholds are kept only when adjacent to a
// strong edge; everything below thresholdLow is discarded. Typical values
// for a clean calibration target are 50 and 150.
func EdgeDetect(img image.Image, thresholdLow, thresholdHigh int) (*EdgeDetectResult, error) {
	edges := EdgeGrid(img, thresholdLow, thresholdHigh)

	bounds := img.Bounds()
	out := image.NewGray(bounds)
	count := 0
	for y, row := range edges {
		for x, v := range row {
			if v > 0 {
				out.SetGray(x+bounds.Min.X, y+bounds.Min.Y, color.Gray{Y: 255})
				count++
			}
		}
	}

	encoded, err := encodePNG(out)
	if err != nil {
		return nil, err
	}

	return &EdgeDetectResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		EdgePixels:  count,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// EdgeGrid performs Canny edge detection and returns a binary intensity
// grid: 1 at edge pixels, 0 elsewhere. Projecting an edge grid counts edge
// pixels per row or column, which is what the calibration pipeline uses
// when grid lines contrast poorly against the background.
//
// The stages are the standard ones: 5x5 Gaussian noise reduction, Sobel
// gradients, non-maximum suppression, and double-threshold hysteresis.
func EdgeGrid(img image.Image, thresholdLow, thresholdHigh int) profile.Grid {
	gray := LuminanceGrid(img)
	height := gray.Rows()
	width := gray.Cols()
	if height == 0 || width == 0 {
		return profile.Grid{}
	}

	blurred := gaussianSmooth5x5(gray)
	magnitude, direction := sobelGradients(blurred)
	suppressed := suppressNonMaxima(magnitude, direction)

	lo := float64(thresholdLow)
	hi := float64(thresholdHigh)

	edges := make(profile.Grid, height)
	for y := 0; y < height; y++ {
		edges[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			v := suppressed[y][x]
			switch {
			case v >= hi:
				edges[y][x] = 1
			case v >= lo && hasStrongNeighbor(suppressed, x, y, hi):
				edges[y][x] = 1
			}
		}
	}
	return edges
}

// gaussianSmooth5x5 applies a 5x5 Gaussian kernel (sigma ~= 1.4, sum 273)
// with clamped borders.
func gaussianSmooth5x5(g profile.Grid) profile.Grid {
	kernel := [5][5]float64{
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	}
	const kernelSum = 273.0

	height := g.Rows()
	width := g.Cols()
	out := make(profile.Grid, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					sum += g[py][px] * kernel[ky+2][kx+2]
				}
			}
			out[y][x] = sum / kernelSum
		}
	}
	return out
}

// sobelGradients computes gradient magnitude and direction with 3x3 Sobel
// operators, clamping at the borders.
func sobelGradients(g profile.Grid) (magnitude, direction profile.Grid) {
	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	height := g.Rows()
	width := g.Cols()
	magnitude = make(profile.Grid, height)
	direction = make(profile.Grid, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += g[py][px] * sobelX[ky+1][kx+1]
					gy += g[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}
	return magnitude, direction
}

// suppressNonMaxima thins edges to one pixel by keeping only local maxima
// along the gradient direction. Border pixels are zeroed.
func suppressNonMaxima(magnitude, direction profile.Grid) profile.Grid {
	height := magnitude.Rows()
	width := magnitude.Cols()
	out := make(profile.Grid, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		if y == 0 || y == height-1 {
			continue
		}
		for x := 1; x < width-1; x++ {
			angle := direction[y][x]
			mag := magnitude[y][x]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude[y][x-1]
				n2 = magnitude[y][x+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude[y-1][x+1]
				n2 = magnitude[y+1][x-1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude[y-1][x]
				n2 = magnitude[y+1][x]
			default:
				n1 = magnitude[y-1][x-1]
				n2 = magnitude[y+1][x+1]
			}

			if mag >= n1 && mag >= n2 {
				out[y][x] = mag
			}
		}
	}
	return out
}

// hasStrongNeighbor reports whether any 8-neighbor of (x, y) meets the high
// threshold.
func hasStrongNeighbor(g profile.Grid, x, y int, hi float64) bool {
	height := g.Rows()
	width := g.Cols()
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			py := clamp(y+ky, 0, height-1)
			px := clamp(x+kx, 0, width-1)
			if g[py][px] >= hi {
				return true
			}
		}
	}
	return false
}

// clamp constrains an integer to [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
