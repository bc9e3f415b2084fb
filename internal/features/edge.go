package features

import (
	"image"

	"gonum.org/v1/gonum/stat"

	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
)

// EdgeFeatures is the generic edge sub-bundle: Canny edge density plus Sobel
// gradient magnitude and direction statistics.
type EdgeFeatures struct {
	EdgeDensity           float64 `json:"edge_density"`
	GradientMagnitudeMean float64 `json:"gradient_magnitude_mean"`
	GradientMagnitudeStd  float64 `json:"gradient_magnitude_std"`
	GradientDirectionMean float64 `json:"gradient_direction_mean"`
	GradientDirectionStd  float64 `json:"gradient_direction_std"`
	Error                 string  `json:"error,omitempty"`
}

// Ok reports whether edge feature extraction succeeded.
func (f *EdgeFeatures) Ok() bool {
	return f != nil && f.Error == ""
}

// Edges extracts the edge sub-bundle from an image.
func Edges(img image.Image) (*EdgeFeatures, error) {
	gray := imaging.GrayMatrix(img)

	edges := imaging.CannyEdges(gray, 50, 150)
	magnitude, direction := imaging.Gradient(gray)

	mag := flatten(magnitude)
	dir := flatten(direction)

	return &EdgeFeatures{
		EdgeDensity:           imaging.EdgeDensity(edges),
		GradientMagnitudeMean: stat.Mean(mag, nil),
		GradientMagnitudeStd:  stat.PopStdDev(mag, nil),
		GradientDirectionMean: stat.Mean(dir, nil),
		GradientDirectionStd:  stat.PopStdDev(dir, nil),
	}, nil
}
