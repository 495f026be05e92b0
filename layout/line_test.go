package layout

import (
	"testing"

	"github.com/tsawler/snapdoc/model"
)

// makeSpan creates a span for line detection tests
func makeSpan(text string, x, y, w, h, size float64, lineID string) model.Span {
	return model.Span{
		Text:     text,
		BBox:     model.NewBBox(x, y, w, h),
		FontSize: size,
		LineID:   lineID,
	}
}

func TestLineDetectorGroupsByLineID(t *testing.T) {
	// Spans arrive out of reading order; grouping and left-to-right
	// sorting must still assemble the correct text.
	spans := []model.Span{
		makeSpan("world", 60, 10, 50, 14, 11, "1.0.0"),
		makeSpan("hello", 0, 10, 50, 14, 11, "1.0.0"),
		makeSpan("second", 0, 40, 60, 14, 11, "1.0.1"),
	}

	lines := NewLineDetector().Detect(spans)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "hello world" {
		t.Errorf("line 0 text = %q, want %q", lines[0].Text, "hello world")
	}
	if lines[1].Text != "second" {
		t.Errorf("line 1 text = %q, want %q", lines[1].Text, "second")
	}
}

func TestLineDetectorSortsLinesTopToBottom(t *testing.T) {
	spans := []model.Span{
		makeSpan("bottom", 0, 100, 50, 14, 11, "b"),
		makeSpan("top", 0, 10, 50, 14, 11, "a"),
		makeSpan("middle", 0, 50, 50, 14, 11, "c"),
	}

	lines := NewLineDetector().Detect(spans)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	want := []string{"top", "middle", "bottom"}
	for i, line := range lines {
		if line.Text != want[i] {
			t.Errorf("line %d text = %q, want %q", i, line.Text, want[i])
		}
		if line.Index != i {
			t.Errorf("line %d index = %d, want %d", i, line.Index, i)
		}
	}
}

func TestLineDetectorGeometricFallback(t *testing.T) {
	// No engine line grouping: spans sharing vertical extent must merge
	spans := []model.Span{
		makeSpan("hello", 0, 10, 50, 14, 11, ""),
		makeSpan("world", 60, 11, 50, 14, 11, ""),
		makeSpan("below", 0, 50, 50, 14, 11, ""),
	}

	lines := NewLineDetector().Detect(spans)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "hello world" {
		t.Errorf("line 0 text = %q, want %q", lines[0].Text, "hello world")
	}
	if lines[1].Text != "below" {
		t.Errorf("line 1 text = %q, want %q", lines[1].Text, "below")
	}
}

func TestLineDetectorMixedGroupingUsesGeometry(t *testing.T) {
	// One span without a LineID forces the geometric strategy for all
	spans := []model.Span{
		makeSpan("left", 0, 10, 40, 14, 11, "1.0.0"),
		makeSpan("right", 50, 10, 40, 14, 11, ""),
	}

	lines := NewLineDetector().Detect(spans)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "left right" {
		t.Errorf("text = %q, want %q", lines[0].Text, "left right")
	}
}

func TestLineFontSizeIsMaximum(t *testing.T) {
	spans := []model.Span{
		makeSpan("Big", 0, 10, 40, 30, 24, "a"),
		makeSpan(".", 45, 25, 5, 5, 8, "a"),
	}

	lines := NewLineDetector().Detect(spans)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].FontSize != 24 {
		t.Errorf("font size = %v, want 24", lines[0].FontSize)
	}
}

func TestLineSpacing(t *testing.T) {
	spans := []model.Span{
		makeSpan("first", 0, 10, 50, 14, 11, "a"),
		makeSpan("second", 0, 30, 50, 14, 11, "b"),
	}

	lines := NewLineDetector().Detect(spans)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].SpacingBefore != 0 {
		t.Errorf("first line spacing = %v, want 0", lines[0].SpacingBefore)
	}
	// First line bottom is 24, second line top is 30
	if lines[1].SpacingBefore != 6 {
		t.Errorf("second line spacing = %v, want 6", lines[1].SpacingBefore)
	}
}

func TestLineDetectorDropsEmptySpans(t *testing.T) {
	spans := []model.Span{
		makeSpan("  ", 0, 10, 10, 14, 11, "a"),
		makeSpan("kept", 0, 40, 50, 14, 11, "b"),
		makeSpan("", 0, 80, 0, 14, 11, "c"),
	}

	lines := NewLineDetector().Detect(spans)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "kept" {
		t.Errorf("text = %q, want %q", lines[0].Text, "kept")
	}
}

func TestLineDetectorEmptyInput(t *testing.T) {
	if lines := NewLineDetector().Detect(nil); len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
	if lines := NewLineDetector().Detect([]model.Span{}); len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}

func TestLineMergeIsIdempotent(t *testing.T) {
	// Re-detecting from a detected line's own spans yields the same text
	spans := []model.Span{
		makeSpan("two", 40, 10, 30, 14, 11, "a"),
		makeSpan("one", 0, 10, 30, 14, 11, "a"),
	}

	first := NewLineDetector().Detect(spans)
	if len(first) != 1 {
		t.Fatalf("expected 1 line, got %d", len(first))
	}

	second := NewLineDetector().Detect(first[0].Spans)
	if len(second) != 1 {
		t.Fatalf("expected 1 line after remerge, got %d", len(second))
	}
	if second[0].Text != first[0].Text {
		t.Errorf("remerged text = %q, want %q", second[0].Text, first[0].Text)
	}
}
