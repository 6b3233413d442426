package calibration

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tidewatch/calib-tools-mcp/internal/profile"
)

// RenderResult contains a rendered profile plot encoded as base64 PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderProfile plots a projection profile as a bar chart with detected
// peaks marked by red vertical lines, for visual inspection of a
// calibration run.
//
// Bars are colored on a blue-to-red gradient by relative height. width and
// height default to len(values) x 160 when non-positive. An empty profile
// is an error wrapping profile.ErrInvalidArgument; peak indices outside the
// profile are ignored.
func RenderProfile(values []float64, peaks []int, width, height int) (*RenderResult, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: profile is empty", profile.ErrInvalidArgument)
	}
	if width <= 0 {
		width = len(values)
	}
	if height <= 0 {
		height = 160
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	white := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, white)
		}
	}

	for x := 0; x < width; x++ {
		i := x * len(values) / width
		t := 0.0
		if span > 0 {
			t = (values[i] - min) / span
		}

		// Hue 240 (blue) at the bottom of the range through hue 0 (red)
		// at the top.
		bar := colorful.Hsv(240*(1-t), 0.85, 0.9)
		top := height - 1 - int(t*float64(height-1))
		for y := top; y < height; y++ {
			img.Set(x, y, bar.Clamped())
		}
	}

	marker := color.NRGBA{220, 20, 20, 255}
	for _, p := range peaks {
		if p < 0 || p >= len(values) {
			continue
		}
		x := p * width / len(values)
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, marker)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode profile plot: %w", err)
	}

	return &RenderResult{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
