package detection

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
	"gonum.org/v1/gonum/stat"

	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
)

// Logo candidate filters: contour area window in px² and the roughly
// square/circular aspect window typical of emblems.
const (
	logoMinArea     = 100.0
	logoMaxArea     = 10000.0
	logoMinAspect   = 0.5
	logoMaxAspect   = 2.0
	logoMaxKept     = 5
	logoSurroundPad = 10
	logoContrastRef = 1e-6
)

// RegionBox is a bounding box in x/y/width/height form, as embedded in logo
// and text candidates.
type RegionBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center is the pixel center of a candidate region.
type Center struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LogoCandidate is a contour-derived emblem candidate.
//
// Distinctiveness is the contrast of the region against its local surround
// (stddev of the region divided by stddev of the 10px-expanded surround);
// higher values are more logo-like.
type LogoCandidate struct {
	BBox            RegionBox `json:"bbox"`
	Area            float64   `json:"area"`
	AspectRatio     float64   `json:"aspect_ratio"`
	Center          Center    `json:"center"`
	Distinctiveness float64   `json:"distinctiveness"`
}

// LogoAnalysis is the logo/emblem section of an annotation document.
type LogoAnalysis struct {
	TotalLogos     int             `json:"total_logos"`
	LogoCandidates []LogoCandidate `json:"logo_candidates"`
	Method         string          `json:"logo_detection_method,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// Ok reports whether logo analysis succeeded.
func (a *LogoAnalysis) Ok() bool {
	return a != nil && a.Error == ""
}

// AnalyzeLogos finds logo and emblem candidates on a uniform image.
//
// The image is thresholded at 127 and external contours are extracted;
// contours inside the logo area and aspect windows become candidates, and the
// first five are scored for distinctiveness against their local surround.
// This is a heuristic tuned for garment-scale photographs, not a trained
// logo detector.
func AnalyzeLogos(img image.Image) (*LogoAnalysis, error) {
	binary := segment.Threshold(img, 127)
	contours := FindContours(binary, 1)
	gray := imaging.GrayMatrix(img)
	bounds := img.Bounds()

	candidates := make([]LogoCandidate, 0)
	for _, c := range contours {
		if c.Area <= logoMinArea || c.Area >= logoMaxArea {
			continue
		}
		aspect := c.AspectRatio()
		if aspect <= logoMinAspect || aspect >= logoMaxAspect {
			continue
		}
		candidates = append(candidates, LogoCandidate{
			BBox: RegionBox{
				X:      c.Bounds.Min.X,
				Y:      c.Bounds.Min.Y,
				Width:  c.Bounds.Dx(),
				Height: c.Bounds.Dy(),
			},
			Area:        c.Area,
			AspectRatio: aspect,
			Center: Center{
				X: c.Bounds.Min.X + c.Bounds.Dx()/2,
				Y: c.Bounds.Min.Y + c.Bounds.Dy()/2,
			},
		})
	}

	if len(candidates) > logoMaxKept {
		candidates = candidates[:logoMaxKept]
	}

	kept := make([]LogoCandidate, 0, len(candidates))
	for _, cand := range candidates {
		roi := image.Rect(cand.BBox.X, cand.BBox.Y,
			cand.BBox.X+cand.BBox.Width, cand.BBox.Y+cand.BBox.Height)
		if roi.Dx() <= 0 || roi.Dy() <= 0 {
			continue
		}

		surround := image.Rect(
			max(0, roi.Min.X-logoSurroundPad),
			max(0, roi.Min.Y-logoSurroundPad),
			min(bounds.Dx(), roi.Max.X+logoSurroundPad),
			min(bounds.Dy(), roi.Max.Y+logoSurroundPad),
		)

		cand.Distinctiveness = regionStd(gray, roi) / (regionStd(gray, surround) + logoContrastRef)
		kept = append(kept, cand)
	}

	return &LogoAnalysis{
		TotalLogos:     len(kept),
		LogoCandidates: kept,
		Method:         "contour_analysis",
	}, nil
}

// regionStd computes the population standard deviation of grayscale values
// inside r. Coordinates outside the matrix are ignored.
func regionStd(gray [][]float64, r image.Rectangle) float64 {
	vals := make([]float64, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		if y < 0 || y >= len(gray) {
			continue
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			if x < 0 || x >= len(gray[y]) {
				continue
			}
			vals = append(vals, gray[y][x])
		}
	}
	if len(vals) == 0 {
		return 0
	}
	return stat.PopStdDev(vals, nil)
}
