package layout

import (
	"github.com/tsawler/snapdoc/model"
)

// ParagraphConfig holds configuration for paragraph grouping
type ParagraphConfig struct {
	// GapRatio is the maximum vertical gap between consecutive same-level
	// lines, as a multiple of the line's font size, for the lines to be
	// merged into one block. A larger gap, or any level change, starts a
	// new block (default: 1.5)
	GapRatio float64
}

// DefaultParagraphConfig returns sensible default configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		GapRatio: 1.5,
	}
}

// Config holds configuration for the full layout analysis pipeline
type Config struct {
	// Line detection configuration
	Line LineConfig

	// Font-size ranking configuration
	Rank RankConfig

	// Paragraph grouping configuration
	Paragraph ParagraphConfig
}

// DefaultConfig returns a configuration with sensible defaults for
// typical screenshot analysis
func DefaultConfig() Config {
	return Config{
		Line:      DefaultLineConfig(),
		Rank:      DefaultRankConfig(),
		Paragraph: DefaultParagraphConfig(),
	}
}

// Analyzer converts an image's OCR spans into an ordered sequence of
// typed blocks
type Analyzer struct {
	config Config
}

// NewAnalyzer creates a new analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		config: DefaultConfig(),
	}
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{
		config: config,
	}
}

// Analyze runs the full pipeline on one image's spans: line grouping,
// size-distribution ranking, paragraph grouping, and ordering. It is
// deterministic, never fails, and returns an empty sequence when no
// spans survive filtering. Block Order values start at 0 and increase
// strictly in top-to-bottom order of each block's first line.
func (a *Analyzer) Analyze(spans []model.Span) []model.Block {
	lines := NewLineDetectorWithConfig(a.config.Line).Detect(spans)
	if len(lines) == 0 {
		return []model.Block{}
	}

	ranking := NewRankerWithConfig(a.config.Rank).Rank(lines)

	blocks := a.groupIntoBlocks(lines, ranking.Levels)
	for i := range blocks {
		blocks[i].Order = i
	}

	return blocks
}

// groupIntoBlocks merges consecutive lines into blocks. A line continues
// the current block when it has the same level and its gap from the
// previous line is small relative to its font size; paragraph lines are
// joined with single newlines so nothing is lost.
func (a *Analyzer) groupIntoBlocks(lines []Line, levels []model.Level) []model.Block {
	var blocks []model.Block

	var current []Line
	var currentLevel model.Level

	flush := func() {
		if len(current) == 0 {
			return
		}
		blocks = append(blocks, buildBlock(current, currentLevel))
		current = nil
	}

	for i, line := range lines {
		if len(current) == 0 {
			current = []Line{line}
			currentLevel = levels[i]
			continue
		}

		if levels[i] == currentLevel && line.SpacingBefore <= a.maxGap(line) {
			current = append(current, line)
			continue
		}

		flush()
		current = []Line{line}
		currentLevel = levels[i]
	}
	flush()

	return blocks
}

// maxGap returns the paragraph-continuation gap threshold for a line
func (a *Analyzer) maxGap(line Line) float64 {
	return line.FontSize * a.config.Paragraph.GapRatio
}

// buildBlock assembles a block from a run of same-level lines
func buildBlock(lines []Line, level model.Level) model.Block {
	block := model.Block{
		Level:    level,
		BBox:     lines[0].BBox,
		FontSize: lines[0].FontSize,
	}

	text := lines[0].Text
	for _, line := range lines[1:] {
		text += "\n" + line.Text
		block.BBox = block.BBox.Union(line.BBox)
		if line.FontSize > block.FontSize {
			block.FontSize = line.FontSize
		}
	}
	block.Text = text

	return block
}
