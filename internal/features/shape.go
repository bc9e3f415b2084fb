package features

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/segment"

	"github.com/tripplexbns-code/ainiform-sub000/internal/detection"
)

// ShapeFeatures is the generic shape sub-bundle, describing the largest
// foreground contour after thresholding at 127.
type ShapeFeatures struct {
	ContourArea      float64             `json:"contour_area"`
	ContourPerimeter float64             `json:"contour_perimeter"`
	Circularity      float64             `json:"circularity"`
	AspectRatio      float64             `json:"aspect_ratio"`
	BoundingBox      detection.RegionBox `json:"bounding_box"`
	Error            string              `json:"error,omitempty"`
}

// Ok reports whether shape feature extraction succeeded.
func (f *ShapeFeatures) Ok() bool {
	return f != nil && f.Error == ""
}

// Shape extracts shape features from the largest contour of the thresholded
// image. Circularity is 4*pi*area/perimeter^2 (1.0 for a perfect disc), or 0
// when the perimeter is 0.
func Shape(img image.Image) (*ShapeFeatures, error) {
	binary := segment.Threshold(img, 127)
	contours := detection.FindContours(binary, 1)

	largest, ok := detection.LargestContour(contours)
	if !ok {
		return nil, fmt.Errorf("no contours found")
	}

	circularity := 0.0
	if largest.Perimeter > 0 {
		circularity = 4 * math.Pi * largest.Area / (largest.Perimeter * largest.Perimeter)
	}

	return &ShapeFeatures{
		ContourArea:      largest.Area,
		ContourPerimeter: largest.Perimeter,
		Circularity:      circularity,
		AspectRatio:      largest.AspectRatio(),
		BoundingBox: detection.RegionBox{
			X:      largest.Bounds.Min.X,
			Y:      largest.Bounds.Min.Y,
			Width:  largest.Bounds.Dx(),
			Height: largest.Bounds.Dy(),
		},
	}, nil
}
