// Package detection locates uniform components and candidate regions on
// uniform photographs.
//
// Three kinds of detection live here:
//
//   - Component detection: a ComponentDetector adapter over an external
//     bounding-box model (YOLOClient is the HTTP implementation), with class
//     mapping through the fixed 9-entry uniform component table and a strict
//     >0.5 confidence filter.
//   - Logo/emblem candidates: threshold + external contour analysis, filtered
//     by area and aspect ratio, scored for contrast against the local
//     surround.
//   - Text/insignia candidates: morphological close/open + threshold +
//     contour analysis with a wide aspect window, optionally enriched with
//     OCR.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0,0) at the
// top-left corner, X increasing rightward, Y increasing downward. Component
// detections use x1/y1/x2/y2 boxes; candidate regions use x/y/width/height
// boxes, matching the shapes persisted on annotation documents.
//
// # Heuristics, Not Models
//
// Logo and text candidates come from contour and contrast heuristics tuned
// for garment-scale photographs. They trade recall for zero model
// dependencies; the area/aspect windows and the confidence threshold are
// tunable constants, not laws. Expect false positives on busy fabric
// patterns.
package detection
