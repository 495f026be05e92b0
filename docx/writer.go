package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/snapdoc/model"
)

// Config holds configuration for the document writer
type Config struct {
	// FontName is the base font for all text (default: "Calibri")
	FontName string

	// BodySize is the body text size in points (default: 11)
	BodySize float64

	// TitleSize through Heading3Size are the style sizes in points,
	// used when a block carries no size estimate of its own
	// (defaults: 28, 16, 14, 12)
	TitleSize    float64
	Heading1Size float64
	Heading2Size float64
	Heading3Size float64

	// UseEstimatedSizes puts each heading block's estimated font size on
	// its runs, so headings keep the scale they had on the screenshot
	// (default: true)
	UseEstimatedSizes bool

	// GapScale converts the pixel gap between consecutive blocks into
	// space-before points (default: 0.3)
	GapScale float64

	// Margins in twips: 0.8in top/bottom, 1.0in left/right
	MarginVertical   int
	MarginHorizontal int
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		FontName:          "Calibri",
		BodySize:          11,
		TitleSize:         28,
		Heading1Size:      16,
		Heading2Size:      14,
		Heading3Size:      12,
		UseEstimatedSizes: true,
		GapScale:          0.3,
		MarginVertical:    1152,
		MarginHorizontal:  1440,
	}
}

// Writer serializes a structured document into DOCX bytes
type Writer struct {
	config Config
}

// NewWriter creates a new writer with default configuration
func NewWriter() *Writer {
	return &Writer{
		config: DefaultConfig(),
	}
}

// NewWriterWithConfig creates a writer with custom configuration
func NewWriterWithConfig(config Config) *Writer {
	return &Writer{
		config: config,
	}
}

// Write serializes the document into a complete DOCX archive
func (w *Writer) Write(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.WriteTo(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo serializes the document into a complete DOCX archive, writing
// the bytes to out
func (w *Writer) WriteTo(doc *model.Document, out io.Writer) error {
	docPart, err := w.documentXML(doc)
	if err != nil {
		return fmt.Errorf("failed to build document.xml: %w", err)
	}

	zw := zip.NewWriter(out)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", docPart},
		{"word/styles.xml", w.stylesXML()},
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}

	return zw.Close()
}

// documentXML renders word/document.xml for the document's blocks
func (w *Writer) documentXML(doc *model.Document) (string, error) {
	body := bodyXML{
		SectPr: sectPrXML{
			PgMar: pgMarXML{
				Top:    w.config.MarginVertical,
				Bottom: w.config.MarginVertical,
				Left:   w.config.MarginHorizontal,
				Right:  w.config.MarginHorizontal,
			},
		},
	}

	if doc != nil {
		var prev *model.Block
		for i := range doc.Blocks {
			block := &doc.Blocks[i]
			body.Paragraphs = append(body.Paragraphs, w.paragraph(block, prev))
			prev = block
		}
	}

	out, err := xml.Marshal(documentXML{XmlnsW: nsW, Body: body})
	if err != nil {
		return "", err
	}
	return xml.Header + string(out), nil
}

// paragraph renders one block as a styled paragraph. Lines merged into
// the block are emitted as runs separated by soft line breaks.
func (w *Writer) paragraph(block, prev *model.Block) paragraphXML {
	p := paragraphXML{
		Props: &paragraphPropsXML{
			Spacing: w.spacing(block, prev),
		},
	}
	if id := styleID(block.Level); id != "" {
		p.Props.Style = &valXML{Val: id}
	}

	runProps := w.runProps(block)
	for i, line := range strings.Split(block.Text, "\n") {
		if i > 0 {
			p.Runs = append(p.Runs, runXML{Break: &struct{}{}})
		}
		p.Runs = append(p.Runs, runXML{
			Props: runProps,
			Text:  &textXML{Space: "preserve", Value: line},
		})
	}

	return p
}

// runProps returns run properties for a block's text runs. Heading runs
// carry the estimated size from the screenshot when configured to.
func (w *Writer) runProps(block *model.Block) *runPropsXML {
	if !block.Level.IsHeading() || !w.config.UseEstimatedSizes || block.FontSize <= 0 {
		return nil
	}

	size := strconv.Itoa(halfPoints(block.FontSize))
	return &runPropsXML{
		Bold:   &struct{}{},
		Size:   &valXML{Val: size},
		SizeCs: &valXML{Val: size},
	}
}

// spacing derives paragraph spacing from the vertical gap the blocks had
// on the image; body paragraphs keep tight 1.15 line spacing.
func (w *Writer) spacing(block, prev *model.Block) *spacingXML {
	s := &spacingXML{}

	if prev != nil {
		gap := block.BBox.Top() - prev.BBox.Bottom()
		if gap > 0 {
			s.Before = twips(gap * w.config.GapScale)
		}
	}

	switch block.Level {
	case model.LevelTitle, model.LevelHeading1:
		s.After = twips(8)
	case model.LevelHeading2:
		s.After = twips(6)
	case model.LevelHeading3:
		s.After = twips(4)
	default:
		s.Line = 276 // 1.15 line spacing
		s.LineRule = "auto"
	}

	return s
}

// twips converts points to twentieths of a point
func twips(points float64) int {
	return int(points*20 + 0.5)
}
