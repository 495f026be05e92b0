// Package model defines the core data types shared across snapdoc:
// bounding-box geometry, OCR spans, and the structured document model
// (blocks tagged with a semantic level) produced by layout analysis.
//
// All coordinates are in image pixel space: X grows rightward, Y grows
// downward, so a bounding box's Top is its Y coordinate and its Bottom
// is Y+Height.
package model
