package sentseg

import (
	"log/slog"
	"runtime"

	"github.com/jamesainslie/go-sentseg/rules"
)

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	corpus  *rules.Corpus
	workers int
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		workers: runtime.NumCPU(),
		logger:  slog.Default(),
	}
}

// WithCorpus sets the rule corpus (default: the embedded corpus). Multiple
// Segmenters with different corpora can coexist; synthetic corpora are
// handy in tests.
func WithCorpus(c *rules.Corpus) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.corpus = c
		}
	}
}

// WithWorkers sets the SegmentBatch concurrency (default: runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}
