// Package markdown renders the structured document model as Markdown.
// Block levels map to heading markers (Title = #, Heading1 = ##, and so
// on); body blocks become paragraphs separated by blank lines.
package markdown

import (
	"strings"

	"github.com/tsawler/snapdoc/model"
)

// Writer serializes a structured document into Markdown
type Writer struct{}

// NewWriter creates a new Markdown writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders the document's blocks in order
func (w *Writer) Write(doc *model.Document) []byte {
	if doc == nil || len(doc.Blocks) == 0 {
		return nil
	}

	var sb strings.Builder
	for i, block := range doc.Blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}

		if prefix := headingPrefix(block.Level); prefix != "" {
			sb.WriteString(prefix)
			sb.WriteString(" ")
			// A heading is a single line; collapse merged lines
			sb.WriteString(strings.ReplaceAll(block.Text, "\n", " "))
		} else {
			sb.WriteString(block.Text)
		}
	}
	sb.WriteString("\n")

	return []byte(sb.String())
}

// headingPrefix returns the Markdown marker for a level, or "" for body text
func headingPrefix(level model.Level) string {
	switch level {
	case model.LevelTitle:
		return "#"
	case model.LevelHeading1:
		return "##"
	case model.LevelHeading2:
		return "###"
	case model.LevelHeading3:
		return "####"
	default:
		return ""
	}
}
