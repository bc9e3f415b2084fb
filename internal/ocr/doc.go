// Package ocr reads text from insignia candidate regions using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) behind a
// build-tag split: with CGO enabled the real engine is used, otherwise a stub
// reports ErrUnavailable and the text analyzer simply leaves candidate text
// empty. OCR is an enrichment; the uniform pipeline never depends on it.
//
// # Prerequisites (CGO builds)
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Performance Considerations
//
// OCR is computationally expensive. Callers should pass tight candidate
// regions rather than whole images; the text analyzer already does this.
package ocr
