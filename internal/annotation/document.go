package annotation

import (
	"github.com/tripplexbns-code/ainiform-sub000/internal/detection"
	"github.com/tripplexbns-code/ainiform-sub000/internal/features"
	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
)

// Version identifies the annotation document schema.
const Version = "2.0"

// VisualFeatures bundles the generic per-aspect feature sets used by the
// similarity comparator. Sections that failed to extract carry their error in
// their own Error field rather than being omitted.
type VisualFeatures struct {
	Color   *features.ColorFeatures   `json:"color_features,omitempty"`
	Texture *features.TextureFeatures `json:"texture_features,omitempty"`
	Edge    *features.EdgeFeatures    `json:"edge_features,omitempty"`
	Shape   *features.ShapeFeatures   `json:"shape_features,omitempty"`
}

// Document is a full uniform annotation record.
//
// A document with a non-empty top-level Error failed before any analysis ran
// (usually the image could not be loaded) and carries only the image path and
// timestamp. Otherwise every section is present, and sections that failed
// individually record the failure in their own error field so one bad
// extractor never discards the rest of the analysis.
type Document struct {
	Error               string                     `json:"error,omitempty"`
	ImagePath           string                     `json:"image_path"`
	ImageDimensions     *imaging.Dimensions        `json:"image_dimensions,omitempty"`
	DetectionResults    *detection.ComponentReport `json:"detection_results,omitempty"`
	UniformFeatures     *features.FabricFeatures   `json:"uniform_features,omitempty"`
	LogoAnalysis        *detection.LogoAnalysis    `json:"logo_analysis,omitempty"`
	ColorAnalysis       *features.ColorAnalysis    `json:"color_analysis,omitempty"`
	TextAnalysis        *detection.TextAnalysis    `json:"text_analysis,omitempty"`
	VisualFeatures      *VisualFeatures            `json:"visual_features,omitempty"`
	UniquenessSignature string                     `json:"uniqueness_signature,omitempty"`
	SignatureFallback   bool                       `json:"signature_fallback,omitempty"`
	AnnotationTimestamp string                     `json:"annotation_timestamp"`
	AnnotationVersion   string                     `json:"annotation_version,omitempty"`
}

// Ok reports whether the annotation ran (individual sections may still carry
// their own errors).
func (d *Document) Ok() bool {
	return d != nil && d.Error == ""
}
