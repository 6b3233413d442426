package imaging

import (
	"encoding/base64"
	"image/color"
	"testing"
)

func TestCrop(t *testing.T) {
	img := createInMemoryImage(100, 80, color.RGBA{50, 50, 50, 255})

	result, err := Crop(img, Region{X1: 10, Y1: 10, X2: 60, Y2: 40}, 1.0)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Width != 50 || result.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 50x30", result.Width, result.Height)
	}
	if _, err := base64.StdEncoding.DecodeString(result.ImageBase64); err != nil {
		t.Errorf("failed to decode base64: %v", err)
	}
}

func TestCrop_WithScale(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{50, 50, 50, 255})

	result, err := Crop(img, Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, 2.0)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Width != 100 || result.Height != 100 {
		t.Errorf("scaled dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
}

func TestCropImage_InvalidRegions(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{0, 0, 0, 255})

	tests := []struct {
		name string
		r    Region
	}{
		{"outside bounds", Region{X1: -5, Y1: 0, X2: 10, Y2: 10}},
		{"beyond right edge", Region{X1: 0, Y1: 0, X2: 60, Y2: 10}},
		{"inverted x", Region{X1: 30, Y1: 0, X2: 10, Y2: 10}},
		{"zero height", Region{X1: 0, Y1: 10, X2: 10, Y2: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropImage(img, tt.r); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCropImage_ValidRegion(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{200, 0, 0, 255})

	cropped, err := CropImage(img, Region{X1: 5, Y1: 5, X2: 25, Y2: 45})
	if err != nil {
		t.Fatalf("CropImage failed: %v", err)
	}

	if cropped.Bounds().Dx() != 20 || cropped.Bounds().Dy() != 40 {
		t.Errorf("dimensions: got %dx%d, want 20x40", cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}
}
