package annotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SimilarityThreshold is the overall score above which two uniforms are
// reported as similar.
const SimilarityThreshold = 0.7

// Similarity sub-score weights: color and texture dominate, edge structure
// breaks ties.
const (
	colorWeight   = 0.4
	textureWeight = 0.4
	edgeWeight    = 0.2
)

// Similarity is the result of comparing two annotation documents.
type Similarity struct {
	OverallSimilarity   float64 `json:"overall_similarity"`
	ColorSimilarity     float64 `json:"color_similarity"`
	TextureSimilarity   float64 `json:"texture_similarity"`
	EdgeSimilarity      float64 `json:"edge_similarity"`
	IsSimilar           bool    `json:"is_similar"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
}

// Compare scores the visual similarity of two annotated uniforms.
//
// Color similarity is derived from the Euclidean distance between mean BGR
// vectors, texture similarity from the cosine of the LBP histograms, and edge
// similarity from the relative difference in edge density. A sub-aspect whose
// features are missing on either side scores 0 rather than failing the
// comparison.
//
// Returns an error only when a document is absent or failed at annotation
// time.
func Compare(a, b *Document) (*Similarity, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("cannot compare nil annotations")
	}
	if !a.Ok() {
		return nil, fmt.Errorf("first annotation failed: %s", a.Error)
	}
	if !b.Ok() {
		return nil, fmt.Errorf("second annotation failed: %s", b.Error)
	}

	color := colorSimilarity(meanBGR(a), meanBGR(b))
	texture := textureSimilarity(lbpHistogram(a), lbpHistogram(b))
	edge := edgeSimilarity(edgeDensity(a), edgeDensity(b))

	return similarityFromScores(color, texture, edge), nil
}

// similarityFromScores combines the three sub-scores into a weighted overall
// score and applies the similarity threshold.
func similarityFromScores(color, texture, edge float64) *Similarity {
	overall := colorWeight*color + textureWeight*texture + edgeWeight*edge
	return &Similarity{
		OverallSimilarity:   overall,
		ColorSimilarity:     color,
		TextureSimilarity:   texture,
		EdgeSimilarity:      edge,
		IsSimilar:           overall > SimilarityThreshold,
		SimilarityThreshold: SimilarityThreshold,
	}
}

// meanBGR returns the document's mean BGR vector, preferring the generic
// visual features and falling back to the color analysis section for records
// written before visual features were added.
func meanBGR(doc *Document) []float64 {
	if doc.VisualFeatures != nil && doc.VisualFeatures.Color.Ok() {
		return doc.VisualFeatures.Color.MeanBGR
	}
	if doc.ColorAnalysis.Ok() {
		return doc.ColorAnalysis.ColorSpaces.BGRMeans
	}
	return nil
}

// lbpHistogram returns the document's LBP histogram, with the same fallback
// to the uniform features section.
func lbpHistogram(doc *Document) []float64 {
	if doc.VisualFeatures != nil && doc.VisualFeatures.Texture.Ok() {
		return doc.VisualFeatures.Texture.LBPHistogram
	}
	if doc.UniformFeatures.Ok() {
		return doc.UniformFeatures.FabricTextureLBP
	}
	return nil
}

// edgeDensity returns the document's edge density, with the same fallback to
// the uniform features section. A missing value reads as 0.
func edgeDensity(doc *Document) float64 {
	if doc.VisualFeatures != nil && doc.VisualFeatures.Edge.Ok() {
		return doc.VisualFeatures.Edge.EdgeDensity
	}
	if doc.UniformFeatures.Ok() {
		return doc.UniformFeatures.PatternEdgeDensity
	}
	return 0
}

// colorSimilarity maps the Euclidean distance between two mean BGR vectors
// onto [0,1], where 1 is identical and 0 is maximally distant (black vs
// white). Mismatched or missing vectors score 0.
func colorSimilarity(v1, v2 []float64) float64 {
	if len(v1) == 0 || len(v1) != len(v2) {
		return 0
	}
	maxDistance := math.Sqrt(float64(len(v1)) * 255 * 255)
	sim := 1 - floats.Distance(v1, v2, 2)/maxDistance
	return clamp01(sim)
}

// textureSimilarity is the cosine similarity of two LBP histograms.
// Mismatched, missing, or zero-norm histograms score 0.
func textureSimilarity(h1, h2 []float64) float64 {
	if len(h1) == 0 || len(h1) != len(h2) {
		return 0
	}
	n1 := floats.Norm(h1, 2)
	n2 := floats.Norm(h2, 2)
	if n1 == 0 || n2 == 0 {
		return 0
	}
	return clamp01(floats.Dot(h1, h2) / (n1 * n2))
}

// edgeSimilarity compares two edge densities by their relative difference.
// Two edge-free images are identical (1.0).
func edgeSimilarity(e1, e2 float64) float64 {
	maxDensity := math.Max(e1, e2)
	if maxDensity == 0 {
		return 1
	}
	return clamp01(1 - math.Abs(e1-e2)/maxDensity)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
