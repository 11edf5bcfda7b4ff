package sentseg

import (
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-sentseg/rules"
)

// Span is a half-open byte range [Start, End) into the input passed to
// Segment. Spans never copy text; they are only valid while the caller
// keeps the input string.
type Span struct {
	Start int
	End   int
}

// Iter lazily yields sentence spans. It is single-pass and non-restartable:
// once Next returns false the iterator is exhausted, and callers needing
// random access should collect the spans first (see Segmenter.Spans).
//
// The produced spans are contiguous and gap-free: each span starts where
// the previous one ended, the first starts at 0, the last ends at
// len(input). Concatenating the text under every span reproduces the input
// exactly.
type Iter struct {
	text  string
	rs    *rules.RuleSet
	sc    *scanner
	start int
	done  bool
}

func newIter(text string, rs *rules.RuleSet) *Iter {
	return &Iter{text: text, rs: rs, sc: newScanner(text, rs)}
}

// Next returns the next sentence span. The second return is false when the
// input is exhausted.
func (it *Iter) Next() (Span, bool) {
	if it.done {
		return Span{}, false
	}

	for {
		c, ok := it.sc.next()
		if !ok {
			break
		}
		d := classify(it.rs, it.text, c)
		if !d.split {
			continue
		}

		// Whitespace after a split point attaches to the span that just
		// closed, keeping the output byte-exact without a trimming pass.
		end := it.attachWhitespace(d.cut)
		if end <= it.start {
			continue
		}

		span := Span{Start: it.start, End: end}
		it.start = end
		if end == len(it.text) {
			it.done = true
		}
		return span, true
	}

	// The final span runs to end of input whether or not the last
	// character was terminal punctuation.
	if it.start < len(it.text) {
		span := Span{Start: it.start, End: len(it.text)}
		it.start = len(it.text)
		it.done = true
		return span, true
	}

	it.done = true
	return Span{}, false
}

// Text returns the input text underlying a span.
func (it *Iter) Text(sp Span) string {
	return it.text[sp.Start:sp.End]
}

func (it *Iter) attachWhitespace(end int) int {
	for end < len(it.text) {
		c, w := utf8.DecodeRuneInString(it.text[end:])
		if !unicode.IsSpace(c) {
			break
		}
		end += w
	}
	return end
}
