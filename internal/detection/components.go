package detection

import (
	"context"
	"fmt"
)

// ConfidenceThreshold is the minimum confidence for a detection to be kept.
// Detections at or below this value are discarded.
const ConfidenceThreshold = 0.5

// uniformClasses maps detector class indices to uniform component names.
// Unmapped indices fall back to "unknown_<id>".
var uniformClasses = map[int]string{
	0: "polo_shirt",
	1: "t_shirt",
	2: "blouse",
	3: "pants",
	4: "skirt",
	5: "dress",
	6: "jacket",
	7: "shoes",
	8: "accessory",
}

// ClassName returns the uniform component name for a detector class index.
func ClassName(id int) string {
	if name, ok := uniformClasses[id]; ok {
		return name
	}
	return fmt.Sprintf("unknown_%d", id)
}

// BBox is an axis-aligned rectangle in pixel coordinates with x1<=x2, y1<=y2.
type BBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Detection is one recognized uniform component instance.
type Detection struct {
	ClassID    int     `json:"class_id"`
	ClassName  string  `json:"class_name"`
	Confidence float64 `json:"confidence"`
	BBox       BBox    `json:"bbox"`
	Area       float64 `json:"area"`
}

// ComponentReport is the normalized detection section of an annotation
// document. TotalDetections always equals len(Detections), and every retained
// detection has Confidence > ConfidenceThreshold.
type ComponentReport struct {
	TotalDetections int         `json:"total_detections"`
	Detections      []Detection `json:"detections"`
	DetectionModel  string      `json:"detection_model,omitempty"`
	Error           string      `json:"error,omitempty"`
}

// Ok reports whether the detection step succeeded.
func (r *ComponentReport) Ok() bool {
	return r != nil && r.Error == ""
}

// RawDetection is a single box as produced by an external detector, before
// class mapping and confidence filtering.
type RawDetection struct {
	ClassID    int
	Confidence float64
	X1, Y1     float64
	X2, Y2     float64
}

// ComponentDetector is the narrow interface to an external bounding-box
// detector (a YOLO-style model). Implementations must be safe for use from
// one goroutine; share one instance across goroutines only if its runtime is
// documented thread-safe.
type ComponentDetector interface {
	// Detect runs the model over the image at path and returns all raw boxes.
	Detect(ctx context.Context, imagePath string) ([]RawDetection, error)

	// ModelName identifies the model for the detection_model document field.
	ModelName() string
}

// DetectComponents runs the detector over an image and normalizes its output:
// class ids are mapped through the uniform class table and detections with
// confidence <= ConfidenceThreshold are discarded.
//
// Returns an error when the detector is unavailable (nil) or fails; the
// annotator converts that into the section's error field.
func DetectComponents(ctx context.Context, detector ComponentDetector, imagePath string) (*ComponentReport, error) {
	if detector == nil {
		return nil, fmt.Errorf("component detector not available")
	}

	raw, err := detector.Detect(ctx, imagePath)
	if err != nil {
		return nil, fmt.Errorf("component detection failed: %w", err)
	}

	detections := make([]Detection, 0, len(raw))
	for _, d := range raw {
		if d.Confidence <= ConfidenceThreshold {
			continue
		}
		detections = append(detections, Detection{
			ClassID:    d.ClassID,
			ClassName:  ClassName(d.ClassID),
			Confidence: d.Confidence,
			BBox:       BBox{X1: d.X1, Y1: d.Y1, X2: d.X2, Y2: d.Y2},
			Area:       (d.X2 - d.X1) * (d.Y2 - d.Y1),
		})
	}

	return &ComponentReport{
		TotalDetections: len(detections),
		Detections:      detections,
		DetectionModel:  detector.ModelName(),
	}, nil
}
