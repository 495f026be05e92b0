//go:build ocr

package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/snapdoc/model"
)

// TesseractEngine recognizes text with the Tesseract OCR engine via
// gosseract, requesting word-level bounding boxes so the adapter can
// reconstruct lines. A fresh Tesseract client is created per call, which
// makes the engine safe to use concurrently for different images.
type TesseractEngine struct {
	language string
	psm      PageSegMode
}

// NewTesseractEngine creates a Tesseract-backed engine. Multiple
// languages can be specified as a "+" separated string (e.g. "eng+fra");
// empty means Tesseract's default ("eng").
func NewTesseractEngine(language string, psm PageSegMode) (*TesseractEngine, error) {
	return &TesseractEngine{
		language: language,
		psm:      psm,
	}, nil
}

// Recognize performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns the recognized words with their boxes, confidences, and
// Tesseract's block/paragraph/line segmentation.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) ([]Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if e.language != "" {
		if err := client.SetLanguage(e.language); err != nil {
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(e.psm)); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, Word{
			Text: b.Word,
			BBox: model.NewBBox(
				float64(b.Box.Min.X),
				float64(b.Box.Min.Y),
				float64(b.Box.Dx()),
				float64(b.Box.Dy()),
			),
			Confidence: b.Confidence,
			BlockNum:   b.BlockNum,
			ParNum:     b.ParNum,
			LineNum:    b.LineNum,
		})
	}

	return words, nil
}
