package markdown

import (
	"testing"

	"github.com/tsawler/snapdoc/model"
)

func TestWrite(t *testing.T) {
	doc := model.NewDocument()
	doc.Append(
		model.Block{Level: model.LevelTitle, Text: "Report Title"},
		model.Block{Level: model.LevelHeading1, Text: "Introduction"},
		model.Block{Level: model.LevelBody, Text: "First line.\nSecond line."},
		model.Block{Level: model.LevelHeading2, Text: "Details"},
	)

	got := string(NewWriter().Write(doc))
	want := "# Report Title\n\n## Introduction\n\nFirst line.\nSecond line.\n\n### Details\n"

	if got != want {
		t.Errorf("rendered markdown mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestWriteCollapsesMultilineHeadings(t *testing.T) {
	doc := model.NewDocument()
	doc.Append(model.Block{Level: model.LevelTitle, Text: "A Very\nLong Title"})

	got := string(NewWriter().Write(doc))
	if got != "# A Very Long Title\n" {
		t.Errorf("got %q", got)
	}
}

func TestWriteAllLevels(t *testing.T) {
	tests := []struct {
		level  model.Level
		prefix string
	}{
		{model.LevelTitle, "# "},
		{model.LevelHeading1, "## "},
		{model.LevelHeading2, "### "},
		{model.LevelHeading3, "#### "},
		{model.LevelBody, ""},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			doc := model.NewDocument()
			doc.Append(model.Block{Level: tt.level, Text: "text"})

			got := string(NewWriter().Write(doc))
			want := tt.prefix + "text\n"
			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestWriteEmptyDocument(t *testing.T) {
	if got := NewWriter().Write(model.NewDocument()); got != nil {
		t.Errorf("expected nil for empty document, got %q", got)
	}
	if got := NewWriter().Write(nil); got != nil {
		t.Errorf("expected nil for nil document, got %q", got)
	}
}
