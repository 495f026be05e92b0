package model

import "strings"

// Document represents the structured result of analyzing one image or a
// batch of images: an ordered sequence of typed blocks. Documents exist
// only for the duration of one request; nothing is persisted.
type Document struct {
	Blocks []Block
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Blocks: make([]Block, 0),
	}
}

// Append adds blocks to the document, renumbering them so that Order
// values continue the document's existing strictly increasing sequence.
func (d *Document) Append(blocks ...Block) {
	for _, b := range blocks {
		b.Order = len(d.Blocks)
		d.Blocks = append(d.Blocks, b)
	}
}

// BlockCount returns the number of blocks in the document
func (d *Document) BlockCount() int {
	if d == nil {
		return 0
	}
	return len(d.Blocks)
}

// IsEmpty returns true if the document contains no blocks
func (d *Document) IsEmpty() bool {
	return d.BlockCount() == 0
}

// Text returns all block text in document order, blocks separated by
// blank lines. Level information is dropped; use a writer to preserve it.
func (d *Document) Text() string {
	if d == nil || len(d.Blocks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Headings returns the blocks at heading levels, in document order
func (d *Document) Headings() []Block {
	if d == nil {
		return nil
	}

	var result []Block
	for _, b := range d.Blocks {
		if b.Level.IsHeading() {
			result = append(result, b)
		}
	}
	return result
}
