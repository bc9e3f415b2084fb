package annotation

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/tripplexbns-code/ainiform-sub000/internal/detection"
	"github.com/tripplexbns-code/ainiform-sub000/internal/features"
	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
)

// Annotator produces annotation documents for uniform images.
//
// The component detector is optional: with a nil detector the detection
// section of every document carries an availability error and the rest of the
// analysis proceeds normally.
type Annotator struct {
	cache    *imaging.ImageCache
	detector detection.ComponentDetector
}

// New creates an annotator backed by the given image cache and detector.
// detector may be nil.
func New(cache *imaging.ImageCache, detector detection.ComponentDetector) *Annotator {
	return &Annotator{cache: cache, detector: detector}
}

// Annotate analyzes a uniform image and returns its annotation document.
//
// Annotate never returns an error: when the image cannot be loaded the
// document carries a top-level error, and when an individual analysis step
// fails its section records the failure while the other sections complete.
func (a *Annotator) Annotate(ctx context.Context, imagePath string) *Document {
	timestamp := time.Now().Format(time.RFC3339)

	img, err := a.cache.Load(imagePath)
	if err != nil {
		log.Printf("annotate %s: %v", imagePath, err)
		return &Document{
			Error:               err.Error(),
			ImagePath:           imagePath,
			AnnotationTimestamp: timestamp,
		}
	}

	dims := imaging.GetDimensions(img)
	doc := &Document{
		ImagePath:           imagePath,
		ImageDimensions:     &dims,
		AnnotationTimestamp: timestamp,
		AnnotationVersion:   Version,
	}

	doc.DetectionResults, err = detection.DetectComponents(ctx, a.detector, imagePath)
	if err != nil {
		log.Printf("annotate %s: detection: %v", imagePath, err)
		doc.DetectionResults = &detection.ComponentReport{Error: err.Error()}
	}

	doc.UniformFeatures, err = features.Fabric(img)
	if err != nil {
		log.Printf("annotate %s: fabric features: %v", imagePath, err)
		doc.UniformFeatures = &features.FabricFeatures{Error: err.Error()}
	}

	doc.LogoAnalysis, err = detection.AnalyzeLogos(img)
	if err != nil {
		log.Printf("annotate %s: logo analysis: %v", imagePath, err)
		doc.LogoAnalysis = &detection.LogoAnalysis{Error: err.Error()}
	}

	doc.ColorAnalysis, err = features.AnalyzeColors(img)
	if err != nil {
		log.Printf("annotate %s: color analysis: %v", imagePath, err)
		doc.ColorAnalysis = &features.ColorAnalysis{Error: err.Error()}
	}

	doc.TextAnalysis, err = detection.AnalyzeInsignia(img)
	if err != nil {
		log.Printf("annotate %s: text analysis: %v", imagePath, err)
		doc.TextAnalysis = &detection.TextAnalysis{Error: err.Error()}
	}

	doc.VisualFeatures = a.extractVisualFeatures(img, imagePath)

	doc.UniquenessSignature, doc.SignatureFallback = BuildSignature(doc)
	return doc
}

// AnnotateBatch annotates every image in order. Per-image failures are
// contained in the individual documents, so the returned slice always has one
// entry per input path.
func (a *Annotator) AnnotateBatch(ctx context.Context, imagePaths []string) []*Document {
	docs := make([]*Document, 0, len(imagePaths))
	for _, path := range imagePaths {
		docs = append(docs, a.Annotate(ctx, path))
	}
	return docs
}

// extractVisualFeatures runs the four generic extractors with the same
// per-section fault isolation as the main sections.
func (a *Annotator) extractVisualFeatures(img image.Image, imagePath string) *VisualFeatures {
	vf := &VisualFeatures{}

	var err error
	vf.Color, err = features.Colors(img)
	if err != nil {
		log.Printf("annotate %s: color features: %v", imagePath, err)
		vf.Color = &features.ColorFeatures{Error: err.Error()}
	}

	vf.Texture, err = features.Texture(img)
	if err != nil {
		log.Printf("annotate %s: texture features: %v", imagePath, err)
		vf.Texture = &features.TextureFeatures{Error: err.Error()}
	}

	vf.Edge, err = features.Edges(img)
	if err != nil {
		log.Printf("annotate %s: edge features: %v", imagePath, err)
		vf.Edge = &features.EdgeFeatures{Error: err.Error()}
	}

	vf.Shape, err = features.Shape(img)
	if err != nil {
		log.Printf("annotate %s: shape features: %v", imagePath, err)
		vf.Shape = &features.ShapeFeatures{Error: err.Error()}
	}

	return vf
}
