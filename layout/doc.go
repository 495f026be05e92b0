// Package layout analyzes OCR spans and assembles them into a structured
// document. It groups spans into lines, classifies lines into heading
// levels and body text from the image's font-size distribution, merges
// adjacent same-level lines into paragraph blocks, and emits the blocks
// in top-to-bottom reading order.
//
// The analyzer is a pure function of its input: it holds no state across
// invocations, performs no I/O, and never fails on well-formed input.
// Each image is analyzed independently; level assignment only ever looks
// at the size distribution within a single image's span set.
package layout
