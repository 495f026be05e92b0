package ocr

import "fmt"

// ExtractionError reports that the OCR engine could not produce usable
// output for one image: corrupt data, an unsupported format, or an
// internal engine failure. It is terminal for that single image; in
// batch processing other images continue independently.
type ExtractionError struct {
	// Reason describes the failing stage
	Reason string

	// Err is the underlying cause, if any
	Err error
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return "extraction failed: " + e.Reason
	}
	return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
}

// Unwrap returns the underlying cause
func (e *ExtractionError) Unwrap() error {
	return e.Err
}
