// Package annotation orchestrates the uniform analysis pipeline.
//
// An Annotator fuses the detection and feature extraction packages into a
// single annotation Document per image: component detections, fabric texture,
// logo and text candidates, color analysis, generic visual features, and an
// MD5 uniqueness signature over the key features. Individual analysis steps
// fail independently; a document is only unusable when the image itself could
// not be loaded.
//
// The package also provides the consumers of documents: Compare scores two
// annotations by weighted color/texture/edge similarity, FindSimilar ranks a
// corpus against a target, and Render draws the findings back onto the image.
package annotation
