package model

import "strings"

// Span is one OCR-detected text fragment: a word or word group with its
// position on the image. Spans are produced by the extraction adapter and
// consumed immediately by the layout analyzer; they are never persisted.
type Span struct {
	// Text is the recognized text, already trimmed of surrounding whitespace
	Text string

	// BBox is the fragment's bounding box in image pixels
	BBox BBox

	// FontSize is the estimated font size in points, derived from the
	// bounding-box height unless the OCR engine supplies a native estimate
	FontSize float64

	// Confidence is the engine's quality score for this fragment (0-100).
	// Negative means the engine provided no score.
	Confidence float64

	// LineID identifies the physical text line this span belongs to, as
	// assigned by the OCR engine. Spans sharing a LineID are merged in
	// left-to-right order. Empty means the engine provided no grouping
	// and lines must be recovered geometrically.
	LineID string
}

// IsEmpty returns true if the span carries no usable text
func (s Span) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == ""
}
