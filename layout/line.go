package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/snapdoc/model"
)

// Line represents a single physical line of text on an image: the ordered
// merge of all spans sharing a line grouping.
type Line struct {
	// Text is the assembled text, spans joined left to right with single spaces
	Text string

	// BBox is the union of the member spans' bounding boxes
	BBox model.BBox

	// Spans are the member spans, sorted left to right
	Spans []model.Span

	// FontSize is the representative size for the line: the maximum of the
	// member spans' estimates. The maximum is used rather than an average
	// so that small punctuation-only spans cannot drag a heading's size down.
	FontSize float64

	// Index is the line's position on the image (0-based, top to bottom)
	Index int

	// SpacingBefore is the vertical gap from the previous line's bottom
	// edge to this line's top edge (0 for the first line, negative when
	// boxes overlap)
	SpacingBefore float64
}

// Top returns the line's top coordinate, used for vertical ordering
func (l Line) Top() float64 {
	return l.BBox.Top()
}

// IsEmpty returns true if the line has no text content
func (l Line) IsEmpty() bool {
	return strings.TrimSpace(l.Text) == ""
}

// WordCount returns an approximate word count for the line
func (l Line) WordCount() int {
	return len(strings.Fields(l.Text))
}

// LineConfig holds configuration for line detection
type LineConfig struct {
	// OverlapThreshold is the minimum vertical-overlap fraction between a
	// span and a line for the span to join that line, used only when the
	// OCR engine provides no line grouping (default: 0.5)
	OverlapThreshold float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		OverlapThreshold: 0.5,
	}
}

// LineDetector groups OCR spans into text lines
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a new line detector with default configuration
func NewLineDetector() *LineDetector {
	return &LineDetector{
		config: DefaultLineConfig(),
	}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{
		config: config,
	}
}

// Detect groups spans into lines and returns them sorted top to bottom.
// Spans carrying a LineID are grouped by it; if any span lacks one, all
// spans are grouped geometrically by vertical overlap instead, so the two
// strategies never mix within one image.
func (d *LineDetector) Detect(spans []model.Span) []Line {
	spans = dropEmpty(spans)
	if len(spans) == 0 {
		return nil
	}

	var groups [][]model.Span
	if allHaveLineID(spans) {
		groups = groupByLineID(spans)
	} else {
		groups = d.groupByOverlap(spans)
	}

	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		lines = append(lines, buildLine(group))
	}

	// Top-to-bottom, ties resolved left to right for determinism
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].BBox.Top() != lines[j].BBox.Top() {
			return lines[i].BBox.Top() < lines[j].BBox.Top()
		}
		return lines[i].BBox.Left() < lines[j].BBox.Left()
	})

	for i := range lines {
		lines[i].Index = i
		if i > 0 {
			lines[i].SpacingBefore = lines[i].BBox.Top() - lines[i-1].BBox.Bottom()
		}
	}

	return lines
}

// dropEmpty removes spans with no usable text
func dropEmpty(spans []model.Span) []model.Span {
	result := make([]model.Span, 0, len(spans))
	for _, s := range spans {
		if !s.IsEmpty() {
			result = append(result, s)
		}
	}
	return result
}

// allHaveLineID reports whether every span carries an engine-assigned line grouping
func allHaveLineID(spans []model.Span) bool {
	for _, s := range spans {
		if s.LineID == "" {
			return false
		}
	}
	return true
}

// groupByLineID groups spans by their engine-assigned line identifier,
// preserving first-seen order of the identifiers.
func groupByLineID(spans []model.Span) [][]model.Span {
	index := make(map[string]int)
	var groups [][]model.Span

	for _, s := range spans {
		i, ok := index[s.LineID]
		if !ok {
			i = len(groups)
			index[s.LineID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}

	return groups
}

// groupByOverlap groups spans into lines by vertical bounding-box overlap.
// Spans are swept top to bottom; a span joins the current line when it
// overlaps the line's box by at least the configured threshold.
func (d *LineDetector) groupByOverlap(spans []model.Span) [][]model.Span {
	sorted := make([]model.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Top() != sorted[j].BBox.Top() {
			return sorted[i].BBox.Top() < sorted[j].BBox.Top()
		}
		return sorted[i].BBox.Left() < sorted[j].BBox.Left()
	})

	var groups [][]model.Span
	var current []model.Span
	var currentBox model.BBox

	for _, s := range sorted {
		if len(current) == 0 {
			current = []model.Span{s}
			currentBox = s.BBox
			continue
		}

		if currentBox.VerticalOverlap(s.BBox) >= d.config.OverlapThreshold {
			current = append(current, s)
			currentBox = currentBox.Union(s.BBox)
		} else {
			groups = append(groups, current)
			current = []model.Span{s}
			currentBox = s.BBox
		}
	}

	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}

// buildLine assembles a Line from one group of spans
func buildLine(group []model.Span) Line {
	sorted := make([]model.Span, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Left() < sorted[j].BBox.Left()
	})

	line := Line{
		Spans:    sorted,
		BBox:     sorted[0].BBox,
		FontSize: sorted[0].FontSize,
	}

	parts := make([]string, 0, len(sorted))
	for _, s := range sorted {
		parts = append(parts, s.Text)
		line.BBox = line.BBox.Union(s.BBox)
		if s.FontSize > line.FontSize {
			line.FontSize = s.FontSize
		}
	}
	line.Text = strings.Join(parts, " ")

	return line
}
