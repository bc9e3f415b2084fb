// Package imaging provides the low-level image operations shared by the
// uniform analysis pipeline.
//
// This package implements image loading with caching, grayscale conversion,
// Sobel gradients, Canny edge detection, and quadrant cropping. All operations
// work with standard Go image.Image types and use a coordinate system where
// (0,0) is at the top-left corner, X increases rightward, and Y increases
// downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use, so concurrent annotation
// calls may share a cache. All other operations are stateless pure functions
// over their inputs.
//
// # Grayscale and Gradient Conventions
//
// Grayscale matrices use ITU-R BT.601 luminance weights on a 0-255 scale.
// Gradient magnitudes are therefore also on a 0-255 scale, which keeps the
// Canny thresholds (50/150) and the fabric-smoothness statistics directly
// comparable with historical annotation records.
package imaging
