package detection

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/tripplexbns-code/ainiform-sub000/internal/ocr"
)

// Text candidate filters. The aspect window is much wider than for logos;
// printed names and numbers range from tall single glyphs to long lines.
const (
	textMinArea   = 50.0
	textMaxArea   = 5000.0
	textMinAspect = 0.1
	textMaxAspect = 10.0
)

// TextCandidate is a morphology-derived text/insignia candidate.
type TextCandidate struct {
	BBox        RegionBox `json:"bbox"`
	Area        float64   `json:"area"`
	AspectRatio float64   `json:"aspect_ratio"`
	Type        string    `json:"type"`

	// Text holds recognized characters when an OCR backend is compiled in;
	// empty otherwise.
	Text string `json:"text,omitempty"`
}

// TextAnalysis is the text/insignia section of an annotation document.
type TextAnalysis struct {
	TotalTextRegions int             `json:"total_text_regions"`
	TextCandidates   []TextCandidate `json:"text_candidates"`
	Method           string          `json:"detection_method,omitempty"`
	Error            string          `json:"error,omitempty"`
}

// Ok reports whether text analysis succeeded.
func (a *TextAnalysis) Ok() bool {
	return a != nil && a.Error == ""
}

// AnalyzeInsignia detects text, numbers and insignias on a uniform image.
//
// The grayscale image is closed then opened with a 3x3 kernel to join glyph
// strokes into blobs, thresholded at 127, and external contours inside the
// text area/aspect windows become candidates. Unlike logo candidates there is
// no cap: every qualifying region is kept.
//
// When the binary was built with OCR support, each candidate is additionally
// run through Tesseract; OCR failures leave the candidate text empty and are
// never treated as analysis errors.
func AnalyzeInsignia(img image.Image) (*TextAnalysis, error) {
	gray := imaging.Grayscale(img)

	// close then open, 3x3 rectangular kernel
	morph := effect.Erode(effect.Dilate(gray, 1), 1)
	morph = effect.Dilate(effect.Erode(morph, 1), 1)

	binary := segment.Threshold(morph, 127)
	contours := FindContours(binary, 1)

	candidates := make([]TextCandidate, 0)
	for _, c := range contours {
		if c.Area <= textMinArea || c.Area >= textMaxArea {
			continue
		}
		aspect := c.AspectRatio()
		if aspect <= textMinAspect || aspect >= textMaxAspect {
			continue
		}

		cand := TextCandidate{
			BBox: RegionBox{
				X:      c.Bounds.Min.X,
				Y:      c.Bounds.Min.Y,
				Width:  c.Bounds.Dx(),
				Height: c.Bounds.Dy(),
			},
			Area:        c.Area,
			AspectRatio: aspect,
			Type:        "potential_text_or_insignia",
		}

		if ocr.Available() {
			if text, err := ocr.ReadRegion(img, c.Bounds); err == nil {
				cand.Text = text
			}
		}

		candidates = append(candidates, cand)
	}

	return &TextAnalysis{
		TotalTextRegions: len(candidates),
		TextCandidates:   candidates,
		Method:           "morphological_analysis",
	}, nil
}
