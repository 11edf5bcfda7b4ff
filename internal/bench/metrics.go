package bench

import (
	sentseg "github.com/jamesainslie/go-sentseg"
)

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // character match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       3,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return Compute(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

// Compute derives precision, recall, F1, and the weighted score from raw
// counts.
func Compute(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// EvaluateDoc segments a document and scores the predicted boundaries
// against its gold boundaries.
func EvaluateDoc(seg *sentseg.Segmenter, doc *Doc, cfg Config) (Metrics, error) {
	spans, err := seg.Spans(doc.Language, doc.Text)
	if err != nil {
		return Metrics{}, err
	}

	predicted := make([]int, 0, len(spans))
	for _, sp := range spans {
		predicted = append(predicted, sp.End)
	}

	return Evaluate(predicted, doc.Boundaries, cfg), nil
}
