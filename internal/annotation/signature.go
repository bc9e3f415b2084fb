package annotation

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

// BuildSignature derives the uniqueness signature for a document: an MD5 hash
// over the document's key visual features, each formatted with six decimal
// places so the hash is stable across platforms.
//
// The feature vector is: BGR channel means, HSV channel means, logo count,
// area and aspect ratio of up to three logo candidates, text region count,
// fabric smoothness, texture complexity, and pattern edge density. Each
// section contributes independently, so a document with one failed section
// still gets a deterministic signature from the sections that succeeded.
//
// Only when no section produced usable features is a time-based fallback
// signature issued and the second return value true; fallback signatures are
// unique per call and never collide with feature-derived ones in practice.
func BuildSignature(doc *Document) (signature string, fallback bool) {
	feats, ok := signatureFeatures(doc)
	if !ok {
		stamp := time.Now().Format(time.RFC3339Nano)
		return fmt.Sprintf("%x", md5.Sum([]byte(stamp))), true
	}

	parts := make([]string, len(feats))
	for i, f := range feats {
		parts[i] = fmt.Sprintf("%.6f", f)
	}
	joined := strings.Join(parts, ",")
	return fmt.Sprintf("%x", md5.Sum([]byte(joined))), false
}

// signatureFeatures collects the signature feature vector from whichever
// sections succeeded, reporting false only when nothing usable remains.
func signatureFeatures(doc *Document) ([]float64, bool) {
	if doc == nil {
		return nil, false
	}

	var feats []float64
	if doc.ColorAnalysis.Ok() &&
		len(doc.ColorAnalysis.ColorSpaces.BGRMeans) == 3 &&
		len(doc.ColorAnalysis.ColorSpaces.HSVMeans) == 3 {
		feats = append(feats, doc.ColorAnalysis.ColorSpaces.BGRMeans...)
		feats = append(feats, doc.ColorAnalysis.ColorSpaces.HSVMeans...)
	}

	if doc.LogoAnalysis.Ok() {
		feats = append(feats, float64(doc.LogoAnalysis.TotalLogos))
		for i, logo := range doc.LogoAnalysis.LogoCandidates {
			if i >= 3 {
				break
			}
			feats = append(feats, logo.Area, logo.AspectRatio)
		}
	}

	if doc.TextAnalysis.Ok() {
		feats = append(feats, float64(doc.TextAnalysis.TotalTextRegions))
	}

	if doc.UniformFeatures.Ok() {
		feats = append(feats,
			doc.UniformFeatures.FabricSmoothness,
			doc.UniformFeatures.TextureComplexity,
			doc.UniformFeatures.PatternEdgeDensity,
		)
	}

	if len(feats) == 0 {
		return nil, false
	}
	return feats, true
}
