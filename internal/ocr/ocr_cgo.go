//go:build cgo

package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// ErrUnavailable mirrors the non-CGO stub; with a compiled-in backend it is
// never returned but keeps the two build variants API-compatible.
var ErrUnavailable = errors.New("ocr: no tesseract backend compiled in")

// Available reports whether an OCR backend is compiled into the binary.
func Available() bool {
	return true
}

// ReadRegion runs Tesseract over a rectangular region of the image and
// returns the recognized text, trimmed of surrounding whitespace.
//
// Each call creates its own gosseract client; the Tesseract API is not
// thread-safe, and per-call clients keep concurrent annotation calls
// independent.
func ReadRegion(img image.Image, region image.Rectangle) (string, error) {
	region = region.Intersect(img.Bounds())
	if region.Dx() <= 0 || region.Dy() <= 0 {
		return "", fmt.Errorf("ocr: empty region")
	}

	cropped := imaging.Crop(img, region)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return "", fmt.Errorf("ocr: encode region: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("ocr: set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}
