//go:build !ocr

package ocr

import "context"

// TesseractEngine is the stub used when the "ocr" build tag is not set.
// All operations return ErrNotEnabled.
type TesseractEngine struct{}

// NewTesseractEngine returns an error indicating OCR support is not
// enabled. To enable it, rebuild with: go build -tags ocr
func NewTesseractEngine(language string, psm PageSegMode) (*TesseractEngine, error) {
	return nil, ErrNotEnabled
}

// Recognize returns an error indicating OCR support is not enabled.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) ([]Word, error) {
	return nil, ErrNotEnabled
}
