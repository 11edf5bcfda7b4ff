package bench

import (
	"sort"

	sentseg "github.com/jamesainslie/go-sentseg"
)

// LanguageResult holds aggregated metrics for one language.
type LanguageResult struct {
	Language string
	Docs     int
	Metrics  Metrics
}

// ByLanguage evaluates the corpus grouped per language and returns results
// sorted by F1 descending, language code as tiebreak.
func ByLanguage(seg *sentseg.Segmenter, docs []*Doc, cfg Config) ([]LanguageResult, error) {
	type counts struct {
		tp, fp, fn, docs int
	}
	perLang := make(map[string]*counts)

	for _, doc := range docs {
		m, err := EvaluateDoc(seg, doc, cfg)
		if err != nil {
			return nil, err
		}
		c := perLang[doc.Language]
		if c == nil {
			c = &counts{}
			perLang[doc.Language] = c
		}
		c.tp += m.TruePositives
		c.fp += m.FalsePositives
		c.fn += m.FalseNegatives
		c.docs++
	}

	results := make([]LanguageResult, 0, len(perLang))
	for lang, c := range perLang {
		results = append(results, LanguageResult{
			Language: lang,
			Docs:     c.docs,
			Metrics:  Compute(c.tp, c.fp, c.fn, cfg),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Metrics.F1 != results[j].Metrics.F1 {
			return results[i].Metrics.F1 > results[j].Metrics.F1
		}
		return results[i].Language < results[j].Language
	})

	return results, nil
}

// Overall aggregates metrics across all documents.
func Overall(seg *sentseg.Segmenter, docs []*Doc, cfg Config) (Metrics, error) {
	var tp, fp, fn int
	for _, doc := range docs {
		m, err := EvaluateDoc(seg, doc, cfg)
		if err != nil {
			return Metrics{}, err
		}
		tp += m.TruePositives
		fp += m.FalsePositives
		fn += m.FalseNegatives
	}
	return Compute(tp, fp, fn, cfg), nil
}
