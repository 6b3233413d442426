package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"

	"github.com/tidewatch/calib-tools-mcp/internal/profile"
)

// GrayscaleResult contains a grayscale rendition of an image encoded as
// base64 PNG.
type GrayscaleResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Grayscale converts an image to grayscale and returns it as base64 PNG.
func Grayscale(img image.Image) (*GrayscaleResult, error) {
	gray := effect.Grayscale(img)

	encoded, err := encodePNG(gray)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &GrayscaleResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// LuminanceGrid converts an image to a row-major intensity grid using
// BT.601 luminance weights. Values range from 0 (black) to 255 (white).
func LuminanceGrid(img image.Image) profile.Grid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	grid := make(profile.Grid, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			rf := float64(r >> 8)
			gf := float64(g >> 8)
			bf := float64(b >> 8)
			grid[y][x] = 0.299*rf + 0.587*gf + 0.114*bf
		}
	}
	return grid
}

// DarknessGrid is LuminanceGrid inverted (255 - luminance), so that dark
// grid lines on a light background become high values. Projections over a
// darkness grid peak at line positions.
func DarknessGrid(img image.Image) profile.Grid {
	grid := LuminanceGrid(img)
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = 255 - grid[y][x]
		}
	}
	return grid
}
