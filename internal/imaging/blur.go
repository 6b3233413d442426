package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"

	"github.com/tidewatch/calib-tools-mcp/internal/profile"
)

// BlurResult contains a Gaussian-blurred image encoded as base64 PNG.
type BlurResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	KernelSize  int    `json:"kernel_size"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// GaussianBlur blurs an image with the given odd kernel size and returns
// the result as base64 PNG. A kernel size of 1 returns the image unchanged.
func GaussianBlur(img image.Image, kernelSize int) (*BlurResult, error) {
	blurred, err := GaussianBlurImage(img, kernelSize)
	if err != nil {
		return nil, err
	}

	encoded, err := encodePNG(blurred)
	if err != nil {
		return nil, err
	}

	bounds := blurred.Bounds()
	return &BlurResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		KernelSize:  kernelSize,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// GaussianBlurImage blurs an image with the given odd kernel size and
// returns the blurred image for further processing. The kernel size follows
// the same validation rule as profile.Smooth: odd and >= 1, where 1 is a
// no-op.
func GaussianBlurImage(img image.Image, kernelSize int) (image.Image, error) {
	if kernelSize < 1 || kernelSize%2 == 0 {
		return nil, fmt.Errorf("%w: kernel size must be odd and >= 1, got %d", profile.ErrInvalidArgument, kernelSize)
	}
	if kernelSize == 1 {
		return img, nil
	}

	// A k x k Gaussian kernel reaches k/2 pixels either side of center.
	return blur.Gaussian(img, float64(kernelSize/2)), nil
}
