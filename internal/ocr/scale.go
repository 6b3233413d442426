package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Bounds is a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// ScaleLabel is one recognized numeric label on the calibration target.
type ScaleLabel struct {
	// Text is the raw recognized word.
	Text string `json:"text"`

	// Value is the parsed numeric value and Unit its unit ("mm", "cm",
	// "m", "in"), empty when the label carries no unit.
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`

	// Confidence is the OCR confidence (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds locates the label in the image; CenterX and CenterY are the
	// box center, which is what gets paired with grid-line positions.
	Bounds  Bounds `json:"bounds"`
	CenterX int    `json:"center_x"`
	CenterY int    `json:"center_y"`
}

// LabelsResult contains the scale labels recognized in an image.
type LabelsResult struct {
	Labels []ScaleLabel `json:"labels"`
	Count  int          `json:"count"`
}

// labelPattern matches a number with an optional metric or imperial unit,
// e.g. "10", "2.5cm", "100 mm".
var labelPattern = regexp.MustCompile(`^([0-9]+(?:[.,][0-9]+)?)\s*(mm|cm|m|in)?$`)

// ParseScaleLabel parses recognized text as a numeric scale label. The
// decimal separator may be a dot or a comma. Returns ok=false for anything
// that is not a plain number with an optional unit suffix.
func ParseScaleLabel(text string) (value float64, unit string, ok bool) {
	m := labelPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, "", false
	}
	return v, m[2], true
}

// ReadScaleLabels performs OCR on an image file and returns every word that
// parses as a numeric scale label. Words below minConfidence or that do not
// parse are dropped.
func ReadScaleLabels(imagePath, language string, minConfidence float64) (*LabelsResult, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	labels := make([]ScaleLabel, 0, len(boxes))
	for _, box := range boxes {
		confidence := float64(box.Confidence) / 100.0
		if box.Word == "" || confidence < minConfidence {
			continue
		}
		value, unit, ok := ParseScaleLabel(box.Word)
		if !ok {
			continue
		}
		b := Bounds{
			X1: box.Box.Min.X,
			Y1: box.Box.Min.Y,
			X2: box.Box.Max.X,
			Y2: box.Box.Max.Y,
		}
		labels = append(labels, ScaleLabel{
			Text:       box.Word,
			Value:      value,
			Unit:       unit,
			Confidence: confidence,
			Bounds:     b,
			CenterX:    (b.X1 + b.X2) / 2,
			CenterY:    (b.Y1 + b.Y2) / 2,
		})
	}

	return &LabelsResult{Labels: labels, Count: len(labels)}, nil
}

// ReadScaleLabelsFromRegion performs OCR on a rectangular band of an
// already loaded image, typically the labeled edge of the target.
// Returned bounds and centers are adjusted to original image coordinates.
//
// Tesseract needs a file path, so the crop is routed through a temporary
// PNG that is removed before returning.
func ReadScaleLabelsFromRegion(img image.Image, x1, y1, x2, y2 int, language string, minConfidence float64) (*LabelsResult, error) {
	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	tmpFile, err := os.CreateTemp("", "scale-labels-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, cropped); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	result, err := ReadScaleLabels(tmpPath, language, minConfidence)
	if err != nil {
		return nil, err
	}

	for i := range result.Labels {
		l := &result.Labels[i]
		l.Bounds.X1 += x1
		l.Bounds.Y1 += y1
		l.Bounds.X2 += x1
		l.Bounds.Y2 += y1
		l.CenterX += x1
		l.CenterY += y1
	}

	return result, nil
}
