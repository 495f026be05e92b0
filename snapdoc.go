// Package snapdoc converts screenshots into structured text documents.
// It extracts text with an OCR engine, infers document structure
// (title, headings, body paragraphs) from font-size cues, and produces
// an ordered block model that the docx and markdown packages serialize.
//
// Basic usage:
//
//	engine, err := ocr.NewTesseractEngine("eng", ocr.PSM_AUTO)
//	if err != nil {
//	    // handle error
//	}
//	p := snapdoc.New(engine)
//	doc, err := p.ProcessImage(ctx, imageBytes)
//	if err != nil {
//	    // handle error
//	}
//	out, err := docx.NewWriter().Write(doc)
//
// For batches, each image is processed independently and one bad image
// never poisons the rest:
//
//	results := p.ProcessBatch(ctx, images)
//	doc := snapdoc.Combine(results)
package snapdoc

import (
	"context"
	"sync"

	"github.com/tsawler/snapdoc/layout"
	"github.com/tsawler/snapdoc/model"
	"github.com/tsawler/snapdoc/ocr"
)

// Processor runs the extraction-then-analysis pipeline. It is safe for
// concurrent use: the analyzer is pure and the adapter holds no mutable
// state beyond its engine handle.
type Processor struct {
	engine        ocr.Engine
	adapterConfig ocr.Config
	layoutConfig  layout.Config
	workers       int

	adapter  *ocr.Adapter
	analyzer *layout.Analyzer
}

// New creates a processor around the given OCR engine
func New(engine ocr.Engine, opts ...Option) *Processor {
	p := &Processor{
		engine:        engine,
		adapterConfig: ocr.DefaultConfig(),
		layoutConfig:  layout.DefaultConfig(),
		workers:       defaultWorkers,
	}

	for _, opt := range opts {
		opt(p)
	}
	if p.workers < 1 {
		p.workers = 1
	}

	p.adapter = ocr.NewAdapterWithConfig(engine, p.adapterConfig)
	p.analyzer = layout.NewAnalyzerWithConfig(p.layoutConfig)

	return p
}

// Result is the outcome of processing one image in a batch
type Result struct {
	// Document is the structured result, nil when Err is set
	Document *model.Document

	// Err is the per-image failure, typically an *ocr.ExtractionError
	Err error
}

// OK reports whether the image was processed successfully
func (r Result) OK() bool {
	return r.Err == nil
}

// ProcessImage runs the full pipeline on one image: extraction, then
// layout analysis. An image with no recognizable text yields an empty
// document, not an error.
func (p *Processor) ProcessImage(ctx context.Context, image []byte) (*model.Document, error) {
	spans, err := p.adapter.Extract(ctx, image)
	if err != nil {
		return nil, err
	}

	doc := model.NewDocument()
	doc.Append(p.analyzer.Analyze(spans)...)
	return doc, nil
}

// ProcessBatch processes each image independently on a bounded worker
// pool and returns one result per input image, in input order. A failure
// on one image does not prevent others from succeeding.
func (p *Processor) ProcessBatch(ctx context.Context, images [][]byte) []Result {
	results := make([]Result, len(images))

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, img := range images {
		wg.Add(1)
		go func(i int, img []byte) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			doc, err := p.ProcessImage(ctx, img)
			results[i] = Result{Document: doc, Err: err}
		}(i, img)
	}

	wg.Wait()
	return results
}

// Combine concatenates the successful batch results into one document,
// in input order, renumbering blocks so Order values keep increasing
// across images. Failed images are skipped; no separators are inserted
// between images (that policy belongs to the document writer).
func Combine(results []Result) *model.Document {
	doc := model.NewDocument()
	for _, r := range results {
		if r.OK() && r.Document != nil {
			doc.Append(r.Document.Blocks...)
		}
	}
	return doc
}
