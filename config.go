package snapdoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/snapdoc/layout"
	"github.com/tsawler/snapdoc/ocr"
)

// Config collects every heuristic threshold of the pipeline in one
// place so behavior is reproducible and tunable without code changes.
// Zero values mean "use the default"; LoadConfig starts from
// DefaultProcessorConfig and overlays the file's explicit settings.
type Config struct {
	// Language is the OCR language (Tesseract codes, "+"-separated for
	// multiple, e.g. "eng+fra")
	Language string `yaml:"language"`

	// PageSegMode is the Tesseract page segmentation mode
	PageSegMode ocr.PageSegMode `yaml:"page_seg_mode"`

	// ConfidenceThreshold drops OCR words scored below this value (0-100)
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// Preprocess enables grayscale/contrast/sharpen enhancement before OCR
	Preprocess bool `yaml:"preprocess"`

	// FontScale converts bounding-box height to an estimated font size
	FontScale float64 `yaml:"font_scale"`

	// MinFontSize is the floor for derived font sizes
	MinFontSize float64 `yaml:"min_font_size"`

	// SizeTolerance is the relative difference below which two font sizes
	// share a rank
	SizeTolerance float64 `yaml:"size_tolerance"`

	// MaxHeadingRanks is the number of size ranks above body text that
	// map to heading levels
	MaxHeadingRanks int `yaml:"max_heading_ranks"`

	// LineOverlapThreshold is the vertical-overlap fraction for grouping
	// spans into lines when the engine provides no line segmentation
	LineOverlapThreshold float64 `yaml:"line_overlap_threshold"`

	// GapRatio is the paragraph-continuation gap threshold as a multiple
	// of line font size
	GapRatio float64 `yaml:"gap_ratio"`

	// Workers bounds batch concurrency
	Workers int `yaml:"workers"`
}

// DefaultProcessorConfig returns the documented defaults for every knob
func DefaultProcessorConfig() Config {
	adapter := ocr.DefaultConfig()
	lay := layout.DefaultConfig()

	return Config{
		Language:             "eng",
		PageSegMode:          ocr.PSM_AUTO,
		ConfidenceThreshold:  adapter.ConfidenceThreshold,
		Preprocess:           adapter.Preprocess,
		FontScale:            adapter.FontScale,
		MinFontSize:          adapter.MinFontSize,
		SizeTolerance:        lay.Rank.SizeTolerance,
		MaxHeadingRanks:      lay.Rank.MaxHeadingRanks,
		LineOverlapThreshold: lay.Line.OverlapThreshold,
		GapRatio:             lay.Paragraph.GapRatio,
		Workers:              defaultWorkers,
	}
}

// LoadConfig reads a YAML configuration file, overlaying its explicit
// settings on the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultProcessorConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// adapterConfig maps the flat configuration onto the extraction adapter
func (c Config) adapterConfig() ocr.Config {
	cfg := ocr.DefaultConfig()
	if c.ConfidenceThreshold > 0 {
		cfg.ConfidenceThreshold = c.ConfidenceThreshold
	}
	if c.FontScale > 0 {
		cfg.FontScale = c.FontScale
	}
	if c.MinFontSize > 0 {
		cfg.MinFontSize = c.MinFontSize
	}
	cfg.Preprocess = c.Preprocess
	return cfg
}

// layoutConfig maps the flat configuration onto the layout analyzer
func (c Config) layoutConfig() layout.Config {
	cfg := layout.DefaultConfig()
	if c.SizeTolerance > 0 {
		cfg.Rank.SizeTolerance = c.SizeTolerance
	}
	if c.MaxHeadingRanks > 0 {
		cfg.Rank.MaxHeadingRanks = c.MaxHeadingRanks
	}
	if c.LineOverlapThreshold > 0 {
		cfg.Line.OverlapThreshold = c.LineOverlapThreshold
	}
	if c.GapRatio > 0 {
		cfg.Paragraph.GapRatio = c.GapRatio
	}
	return cfg
}
