// Package ocr provides the extraction side of the snapdoc pipeline: it
// wraps an OCR engine and normalizes its raw output into the uniform
// span records consumed by the layout analyzer.
//
// The engine is an explicit capability passed into the adapter, so tests
// and callers can substitute their own implementation. The bundled
// Tesseract engine (via gosseract) is compiled in only with the "ocr"
// build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"context"
	"errors"

	"github.com/tsawler/snapdoc/model"
)

// ErrNotEnabled is returned when the Tesseract engine is requested but
// OCR support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Word is one raw recognition result from an engine: a recognized word
// with its bounding box and quality metadata, before any normalization.
type Word struct {
	// Text is the recognized text as the engine produced it
	Text string

	// BBox is the word's bounding box in image pixels
	BBox model.BBox

	// Confidence is the engine's quality score (0-100). Negative means
	// the engine provides no per-word score.
	Confidence float64

	// FontSize is the engine's native size estimate in points, 0 when
	// the engine provides none (the adapter then derives one from the
	// bounding-box height)
	FontSize float64

	// BlockNum, ParNum and LineNum locate the word in the engine's page
	// segmentation and together identify the physical line the word
	// belongs to. LineNum < 0 means the engine performs no line
	// segmentation and lines must be recovered geometrically.
	BlockNum, ParNum, LineNum int
}

// Engine is the external OCR capability: given image bytes, produce the
// recognized words with per-word geometry. Implementations must be safe
// to call concurrently for different images.
type Engine interface {
	Recognize(ctx context.Context, image []byte) ([]Word, error)
}

// PageSegMode represents page segmentation modes for OCR.
// These control how the engine analyzes the page layout.
type PageSegMode int

// Page segmentation modes (matching Tesseract's numbering).
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)
