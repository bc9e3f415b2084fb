package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Quadrant extracts a named region from an image.
//
// Recognized regions are "top-left", "top-right", "bottom-left" and
// "bottom-right". The split point is at width/2 and height/2, so odd
// dimensions leave the extra row/column in the right/bottom quadrants.
func Quadrant(img image.Image, region string) (image.Image, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var r image.Rectangle
	switch region {
	case "top-left":
		r = image.Rect(0, 0, midX, midY)
	case "top-right":
		r = image.Rect(midX, 0, w, midY)
	case "bottom-left":
		r = image.Rect(0, midY, midX, h)
	case "bottom-right":
		r = image.Rect(midX, midY, w, h)
	default:
		return nil, fmt.Errorf("unknown region: %s", region)
	}

	return imaging.Crop(img, r.Add(bounds.Min)), nil
}

// Quadrants splits an image into its four quadrants in reading order:
// top-left, top-right, bottom-left, bottom-right.
//
// Quadrants with zero area (1-pixel-wide or -tall images) are omitted.
func Quadrants(img image.Image) []image.Image {
	regions := []string{"top-left", "top-right", "bottom-left", "bottom-right"}

	out := make([]image.Image, 0, len(regions))
	for _, region := range regions {
		q, err := Quadrant(img, region)
		if err != nil {
			continue
		}
		if q.Bounds().Dx() > 0 && q.Bounds().Dy() > 0 {
			out = append(out, q)
		}
	}
	return out
}
