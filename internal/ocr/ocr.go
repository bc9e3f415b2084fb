//go:build !cgo

package ocr

import (
	"errors"
	"image"
)

// ErrUnavailable is returned when the binary was built without a Tesseract
// backend.
var ErrUnavailable = errors.New("ocr: no tesseract backend compiled in")

// Available reports whether an OCR backend is compiled into the binary.
func Available() bool {
	return false
}

// ReadRegion always returns ErrUnavailable in non-CGO builds.
func ReadRegion(img image.Image, region image.Rectangle) (string, error) {
	return "", ErrUnavailable
}
