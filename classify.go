package sentseg

import (
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-sentseg/rules"
)

// decision is the classifier's verdict for one candidate. cut is the byte
// offset at which the current span closes (before trailing whitespace is
// attached) and is meaningful only when split is true.
type decision struct {
	split bool
	cut   int
}

// classify decides SPLIT or SUPPRESS for a boundary candidate. Rules are
// evaluated in order, first match wins; when ambiguous the policy prefers
// SUPPRESS, trading missed boundaries for never tearing a sentence apart.
func classify(rs *rules.RuleSet, text string, c candidate) decision {
	if c.kind == candParagraph {
		return decision{split: true, cut: c.runEnd}
	}

	head := text[:c.runStart]
	tail := text[c.runEnd:]
	marker, _ := utf8.DecodeRuneInString(text[c.runStart:])

	// Citation clusters ("announced on 31 July.[17][18]") belong to the
	// sentence they annotate: the boundary moves past them and splits.
	if n := rs.NumberedReference(tail); n > 0 {
		return decision{split: true, cut: c.runEnd + n}
	}

	if c.depth > 0 {
		if rs.SplitAfterQuote() && c.closeAfter > 0 {
			return decision{split: true, cut: c.closeAfter}
		}
		return decision{}
	}

	word := rs.LastWord(head)

	if rs.IsAbbreviation(word, marker) {
		return decision{}
	}

	if marker == '.' && rs.IsNumberedListToken(word) {
		return decision{}
	}
	if marker == '.' && rs.IsOrdinalToken(word) && digitFollows(tail) {
		return decision{}
	}
	if marker == '!' && rs.IsExclamationWord(word) {
		return decision{}
	}

	if rs.ContinuesNextWord(tail) {
		return decision{}
	}

	return decision{split: true, cut: c.runEnd}
}

// digitFollows reports whether the first non-whitespace rune of tail is a
// decimal digit.
func digitFollows(tail string) bool {
	for _, c := range tail {
		if unicode.IsSpace(c) {
			continue
		}
		return c >= '0' && c <= '9'
	}
	return false
}
