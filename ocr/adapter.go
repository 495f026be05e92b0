package ocr

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/snapdoc/model"
)

// Config holds configuration for the extraction adapter
type Config struct {
	// ConfidenceThreshold drops words the engine scored below this value
	// (0-100 scale); words without a score are kept (default: 30)
	ConfidenceThreshold float64

	// FontScale converts a word's bounding-box height to a font size in
	// points when the engine gives no native estimate (default: 0.8)
	FontScale float64

	// MinFontSize is the floor for derived font sizes, so noise-sized
	// boxes never produce a zero or negative size (default: 8)
	MinFontSize float64

	// Preprocess runs grayscale/contrast/sharpen enhancement on the image
	// before recognition (default: true)
	Preprocess bool
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 30,
		FontScale:           0.8,
		MinFontSize:         8,
		Preprocess:          true,
	}
}

// Adapter wraps an OCR engine and turns its raw word output into the
// normalized spans the layout analyzer consumes. It holds no state
// beyond its engine handle and configuration.
type Adapter struct {
	engine Engine
	config Config
}

// NewAdapter creates an adapter around the given engine with default
// configuration
func NewAdapter(engine Engine) *Adapter {
	return NewAdapterWithConfig(engine, DefaultConfig())
}

// NewAdapterWithConfig creates an adapter with custom configuration
func NewAdapterWithConfig(engine Engine, config Config) *Adapter {
	return &Adapter{
		engine: engine,
		config: config,
	}
}

// Extract runs the engine once on the image and returns the surviving
// spans: text trimmed and NFC-normalized, empty fragments and
// low-confidence noise dropped, font sizes filled in from box heights
// where the engine gave none. Any engine failure is returned as an
// *ExtractionError; an image with no recognizable text yields an empty
// span slice, not an error.
func (a *Adapter) Extract(ctx context.Context, image []byte) ([]model.Span, error) {
	if a.engine == nil {
		return nil, &ExtractionError{Reason: "no OCR engine configured"}
	}
	if len(image) == 0 {
		return nil, &ExtractionError{Reason: "empty image data"}
	}

	data := image
	if a.config.Preprocess {
		prepared, err := PrepareImage(image)
		if err != nil {
			return nil, &ExtractionError{Reason: "decode image", Err: err}
		}
		data = prepared
	}

	words, err := a.engine.Recognize(ctx, data)
	if err != nil {
		return nil, &ExtractionError{Reason: "recognize", Err: err}
	}

	spans := make([]model.Span, 0, len(words))
	for _, w := range words {
		text := norm.NFC.String(strings.TrimSpace(w.Text))
		if text == "" {
			continue
		}
		if w.Confidence >= 0 && w.Confidence < a.config.ConfidenceThreshold {
			continue
		}

		spans = append(spans, model.Span{
			Text:       text,
			BBox:       w.BBox,
			FontSize:   a.fontSize(w),
			Confidence: w.Confidence,
			LineID:     lineID(w),
		})
	}

	return spans, nil
}

// fontSize returns the engine's native estimate when present, otherwise
// derives one from the bounding-box height
func (a *Adapter) fontSize(w Word) float64 {
	if w.FontSize > 0 {
		return w.FontSize
	}

	size := w.BBox.Height * a.config.FontScale
	if size < a.config.MinFontSize {
		size = a.config.MinFontSize
	}
	return size
}

// lineID builds the span's line grouping key from the engine's page
// segmentation, or returns "" when the engine performs none
func lineID(w Word) string {
	if w.LineNum < 0 {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d", w.BlockNum, w.ParNum, w.LineNum)
}
