// Package features extracts the visual feature bundles that make up a
// uniform annotation: color statistics and dominant palettes, LBP/GLCM
// texture descriptors, Canny/Sobel edge statistics, and contour-derived
// shape metrics.
//
// Two granularities are provided. The generic extractors (Colors, Texture,
// Edges, Shape) produce compact bundles used for similarity comparison, while
// the uniform-specific analyzers (AnalyzeColors, Fabric) produce the richer
// sections stored in annotation documents. All numeric conventions follow
// OpenCV scales (BGR 0-255, hue 0-180) so stored documents remain comparable
// with historical records.
package features
