// Package ocr reads printed scale labels from calibration targets.
//
// Many reference grids carry numeric labels along one edge ("10", "20 mm",
// "5cm"). Reading those labels and pairing them with detected grid-line
// positions turns pixel coordinates into physical units. The package wraps
// the Tesseract OCR engine (via gosseract/v2) for recognition and provides
// pure-Go parsing and scale fitting on top.
//
// Tesseract and the language data must be installed on the host; recognition
// functions return an error when the engine is unavailable. Parsing and
// fitting (ParseScaleLabel, FitScale, ScaleFromLabels) have no native
// dependencies.
package ocr
