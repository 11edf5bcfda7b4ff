package sentseg

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/jamesainslie/go-sentseg/rules"
)

// Segmenter splits text into sentence spans using per-language rule sets.
// It is safe for concurrent use: the rule corpus is immutable after New and
// each call works on its own input.
type Segmenter struct {
	corpus  *rules.Corpus
	workers int
	logger  *slog.Logger
}

// New creates a Segmenter backed by the embedded rule corpus, or by the
// corpus supplied via WithCorpus.
func New(opts ...Option) (*Segmenter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	corpus := cfg.corpus
	if corpus == nil {
		var err error
		corpus, err = rules.Default()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
		}
	}

	s := &Segmenter{
		corpus:  corpus,
		workers: cfg.workers,
		logger:  cfg.logger,
	}
	s.logger.Debug("rule corpus ready",
		"languages", len(corpus.Languages()), "root", corpus.Root())
	return s, nil
}

// Segment returns a lazy iterator of sentence spans over text. The language
// code may be anything; undefined codes resolve through the fallback table
// and never fail. The only error is invalid UTF-8 input, rejected before
// scanning starts.
func (s *Segmenter) Segment(lang, text string) (*Iter, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: language %q", ErrInvalidUTF8, lang)
	}
	return newIter(text, s.corpus.Resolve(lang)), nil
}

// Spans segments text and collects every span. Convenience over Segment for
// callers that need random access.
func (s *Segmenter) Spans(lang, text string) ([]Span, error) {
	it, err := s.Segment(lang, text)
	if err != nil {
		return nil, err
	}
	var spans []Span
	for {
		sp, ok := it.Next()
		if !ok {
			return spans, nil
		}
		spans = append(spans, sp)
	}
}

// SegmentAll segments text and returns the raw text slice under each span,
// whitespace included, so concatenating the result reproduces text exactly.
func (s *Segmenter) SegmentAll(lang, text string) ([]string, error) {
	it, err := s.Segment(lang, text)
	if err != nil {
		return nil, err
	}
	var sentences []string
	for {
		sp, ok := it.Next()
		if !ok {
			return sentences, nil
		}
		sentences = append(sentences, it.Text(sp))
	}
}

// Languages returns the language codes with a RuleSet defined in this
// Segmenter's corpus.
func (s *Segmenter) Languages() []string {
	return s.corpus.Languages()
}
