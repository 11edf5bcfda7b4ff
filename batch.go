package sentseg

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SegmentBatch segments independent documents concurrently, bounded by the
// WithWorkers setting. Results keep the order of docs. Segmentation itself
// never blocks, so the context only gates scheduling of not-yet-started
// documents.
func (s *Segmenter) SegmentBatch(ctx context.Context, lang string, docs []string) ([][]string, error) {
	out := make([][]string, len(docs))
	if len(docs) == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sentences, err := s.SegmentAll(lang, doc)
			if err != nil {
				return err
			}
			out[i] = sentences
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
