package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/tsawler/snapdoc/model"
)

func testDocument() *model.Document {
	doc := model.NewDocument()
	doc.Append(
		model.Block{Level: model.LevelTitle, Text: "Quarterly Report", FontSize: 32, BBox: model.NewBBox(10, 10, 400, 40)},
		model.Block{Level: model.LevelHeading1, Text: "Summary", FontSize: 22, BBox: model.NewBBox(10, 90, 200, 28)},
		model.Block{Level: model.LevelBody, Text: "Revenue grew.\nCosts fell.", FontSize: 14, BBox: model.NewBBox(10, 140, 400, 40)},
	)
	return doc
}

// readParts unpacks the archive into a part-name to content map
func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a valid zip archive: %v", err)
	}

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func TestWriteProducesAllParts(t *testing.T) {
	data, err := NewWriter().Write(testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := readParts(t, data)
	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing archive part %s", name)
		}
	}
}

func TestWriteDocumentContent(t *testing.T) {
	data, err := NewWriter().Write(testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := readParts(t, data)["word/document.xml"]

	for _, want := range []string{
		"Quarterly Report",
		"Summary",
		"Revenue grew.",
		"Costs fell.",
		`w:val="Title"`,
		`w:val="Heading1"`,
		"<w:br>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestWriteHeadingRunsCarryEstimatedSize(t *testing.T) {
	data, err := NewWriter().Write(testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := readParts(t, data)["word/document.xml"]

	// 32pt title in half-points
	if !strings.Contains(doc, `w:val="64"`) {
		t.Error("expected title run size of 64 half-points")
	}
}

func TestWriteEstimatedSizesDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseEstimatedSizes = false

	data, err := NewWriterWithConfig(cfg).Write(testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := readParts(t, data)["word/document.xml"]
	if strings.Contains(doc, `w:val="64"`) {
		t.Error("run-level size should be omitted when estimated sizes are disabled")
	}
}

func TestWriteEscapesXML(t *testing.T) {
	doc := model.NewDocument()
	doc.Append(model.Block{Level: model.LevelBody, Text: `a < b && "quoted"`, FontSize: 12})

	data, err := NewWriter().Write(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := readParts(t, data)["word/document.xml"]
	if strings.Contains(content, "a < b") {
		t.Error("raw angle bracket leaked into XML")
	}
	if !strings.Contains(content, "a &lt; b") {
		t.Error("expected escaped angle bracket")
	}
}

func TestWriteEmptyDocument(t *testing.T) {
	data, err := NewWriter().Write(model.NewDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := readParts(t, data)
	if !strings.Contains(parts["word/document.xml"], "<w:sectPr>") {
		t.Error("expected section properties even with no content")
	}
}

func TestWriteStylesUseConfiguredFont(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FontName = "Georgia"

	data, err := NewWriterWithConfig(cfg).Write(testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	styles := readParts(t, data)["word/styles.xml"]
	if !strings.Contains(styles, "Georgia") {
		t.Error("styles.xml missing configured font name")
	}
}

func TestStyleID(t *testing.T) {
	tests := []struct {
		level  model.Level
		expect string
	}{
		{model.LevelTitle, "Title"},
		{model.LevelHeading1, "Heading1"},
		{model.LevelHeading2, "Heading2"},
		{model.LevelHeading3, "Heading3"},
		{model.LevelBody, ""},
	}
	for _, tt := range tests {
		if got := styleID(tt.level); got != tt.expect {
			t.Errorf("styleID(%v) = %q, want %q", tt.level, got, tt.expect)
		}
	}
}

func TestHalfPoints(t *testing.T) {
	if got := halfPoints(11); got != 22 {
		t.Errorf("halfPoints(11) = %d, want 22", got)
	}
	if got := halfPoints(12.5); got != 25 {
		t.Errorf("halfPoints(12.5) = %d, want 25", got)
	}
}

func TestTwips(t *testing.T) {
	if got := twips(8); got != 160 {
		t.Errorf("twips(8) = %d, want 160", got)
	}
}
