package model

// Level is the semantic prominence of a block in the final document.
// It is a closed enumeration ordered from most to least prominent.
type Level int

const (
	LevelTitle Level = iota // Document title (largest text on the image)
	LevelHeading1
	LevelHeading2
	LevelHeading3
	LevelBody // Regular paragraph text
)

// String returns a string representation of the level
func (l Level) String() string {
	switch l {
	case LevelTitle:
		return "title"
	case LevelHeading1:
		return "heading1"
	case LevelHeading2:
		return "heading2"
	case LevelHeading3:
		return "heading3"
	case LevelBody:
		return "body"
	default:
		return "unknown"
	}
}

// IsHeading returns true for any level more prominent than body text
func (l Level) IsHeading() bool {
	return l >= LevelTitle && l < LevelBody
}

// MoreProminentThan reports whether l ranks above other on the
// Title > Heading1 > Heading2 > Heading3 > Body ordering.
func (l Level) MoreProminentThan(other Level) bool {
	return l < other
}

// Block is one semantic unit of the structured document: one or more
// merged lines sharing a level, in reading order.
type Block struct {
	// Level is the block's semantic prominence
	Level Level

	// Text is the block content. Lines merged into one paragraph are
	// joined with single newlines; nothing is lost.
	Text string

	// Order is the block's position in the final document. Order values
	// form a strictly increasing sequence across a whole batch.
	Order int

	// BBox is the bounding box covering all of the block's lines
	BBox BBox

	// FontSize is the representative font size of the block's lines,
	// carried through so a writer can reproduce the original scale
	FontSize float64
}
