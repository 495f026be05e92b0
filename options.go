package snapdoc

import (
	"github.com/tsawler/snapdoc/layout"
	"github.com/tsawler/snapdoc/ocr"
)

// defaultWorkers bounds batch concurrency when the caller sets nothing
const defaultWorkers = 4

// Option is a functional option for configuring a Processor
type Option func(*Processor)

// WithConfig applies a full configuration, typically loaded from a YAML
// file with LoadConfig
func WithConfig(cfg Config) Option {
	return func(p *Processor) {
		p.adapterConfig = cfg.adapterConfig()
		p.layoutConfig = cfg.layoutConfig()
		if cfg.Workers > 0 {
			p.workers = cfg.Workers
		}
	}
}

// WithAdapterConfig overrides the extraction adapter configuration
func WithAdapterConfig(cfg ocr.Config) Option {
	return func(p *Processor) {
		p.adapterConfig = cfg
	}
}

// WithLayoutConfig overrides the layout analyzer configuration
func WithLayoutConfig(cfg layout.Config) Option {
	return func(p *Processor) {
		p.layoutConfig = cfg
	}
}

// WithWorkers sets the number of images processed concurrently in a batch
func WithWorkers(n int) Option {
	return func(p *Processor) {
		p.workers = n
	}
}
