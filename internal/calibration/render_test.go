package calibration

import (
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/tidewatch/calib-tools-mcp/internal/profile"
)

func TestRenderProfile(t *testing.T) {
	values := []float64{0, 1, 3, 1, 0, 1, 4, 1, 0}

	result, err := RenderProfile(values, []int{2, 6}, 0, 0)
	if err != nil {
		t.Fatalf("RenderProfile failed: %v", err)
	}

	if result.Width != len(values) {
		t.Errorf("default width: got %d, want %d", result.Width, len(values))
	}
	if result.Height != 160 {
		t.Errorf("default height: got %d, want 160", result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != result.Width || img.Bounds().Dy() != result.Height {
		t.Errorf("decoded dimensions: got %dx%d, want %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), result.Width, result.Height)
	}

	// With width == len(values) each peak index maps to its own column, so
	// the marker column must be red from top to bottom.
	for _, p := range []int{2, 6} {
		r, g, b, _ := img.At(p, 0).RGBA()
		if r>>8 != 220 || g>>8 != 20 || b>>8 != 20 {
			t.Errorf("peak marker at x=%d: got rgb(%d,%d,%d), want rgb(220,20,20)",
				p, r>>8, g>>8, b>>8)
		}
	}

	// A column without a bar or marker stays white at the top.
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("background at x=0: got rgb(%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestRenderProfile_ExplicitDimensions(t *testing.T) {
	result, err := RenderProfile([]float64{1, 2, 3}, nil, 300, 100)
	if err != nil {
		t.Fatalf("RenderProfile failed: %v", err)
	}
	if result.Width != 300 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 300x100", result.Width, result.Height)
	}
}

func TestRenderProfile_EmptyValues(t *testing.T) {
	_, err := RenderProfile(nil, nil, 0, 0)
	if err == nil {
		t.Fatal("expected error for empty profile, got nil")
	}
	if !errors.Is(err, profile.ErrInvalidArgument) {
		t.Errorf("error should wrap ErrInvalidArgument, got %v", err)
	}
}

func TestRenderProfile_OutOfRangePeaksIgnored(t *testing.T) {
	result, err := RenderProfile([]float64{1, 2, 1}, []int{-1, 5}, 0, 0)
	if err != nil {
		t.Fatalf("RenderProfile failed: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}

	// No marker may be drawn anywhere.
	for x := 0; x < result.Width; x++ {
		r, g, b, _ := img.At(x, 0).RGBA()
		if r>>8 == 220 && g>>8 == 20 && b>>8 == 20 {
			t.Errorf("unexpected marker at x=%d", x)
		}
	}
}

func TestRenderProfile_ConstantValues(t *testing.T) {
	// A flat profile has zero span; rendering must not divide by zero.
	result, err := RenderProfile([]float64{5, 5, 5, 5}, nil, 0, 40)
	if err != nil {
		t.Fatalf("RenderProfile failed: %v", err)
	}
	if result.Width != 4 || result.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 4x40", result.Width, result.Height)
	}
}
