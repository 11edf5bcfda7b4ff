// Package rules holds the immutable per-language segmentation rule corpus:
// abbreviation sets, terminal punctuation, quotation pair tables, exception
// patterns, and the language fallback table. A Corpus is built once and is
// read-only afterwards, so it may be shared freely across goroutines.
package rules

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Continuation policies decide whether the text following a terminal mark
// signals a clause continuation rather than a new sentence.
const (
	// ContinueTight inspects the first character of the next word, skipping
	// only whitespace.
	ContinueTight = "tight"
	// ContinueSkip skips any non-word characters (quotes, brackets) first.
	ContinueSkip = "skip"
	// ContinueTightCyrillic is ContinueTight plus lowercase Cyrillic.
	ContinueTightCyrillic = "tight-cyrillic"
	// ContinueSkipCyrillic is ContinueSkip plus lowercase Cyrillic.
	ContinueSkipCyrillic = "skip-cyrillic"
	// ContinueNone disables the continuation check.
	ContinueNone = "none"
)

var (
	skipLatinRe    = regexp.MustCompile(`^[^\pL\pN]*[0-9a-z]`)
	skipCyrillicRe = regexp.MustCompile(`^[^\pL\pN]*[0-9a-zа-яё]`)

	// Numbered citation clusters such as "[7][8]" directly after a mark.
	numberedRefRe = regexp.MustCompile(`^(\[\d+\])+`)

	// Ordinal markers ("No. 5", "Nr. 3") followed by a number.
	ordinalTokenRe = regexp.MustCompile(`^(?:[Nn]o|[Nn]os|[Nn]r)$`)

	titleCaser = cases.Title(language.Und)
)

// RuleSet bundles the segmentation rules for one language. It is constructed
// by the Corpus loader and never mutated afterwards.
type RuleSet struct {
	code string

	abbreviations map[string]struct{}
	abbrevMarker  rune
	exclamations  map[string]struct{}
	terminals     map[rune]struct{}
	pairs         map[rune]rune
	months        map[string]struct{}

	continuation    string
	splitAfterQuote bool
	lastWordTrims   []string
}

// Code returns the language code this RuleSet was defined for.
func (r *RuleSet) Code() string { return r.code }

// IsTerminal reports whether c can end a sentence in this language.
func (r *RuleSet) IsTerminal(c rune) bool {
	_, ok := r.terminals[c]
	return ok
}

// CloserFor returns the closing rune paired with an opening quote or bracket.
func (r *RuleSet) CloserFor(open rune) (rune, bool) {
	close, ok := r.pairs[open]
	return close, ok
}

// SplitAfterQuote reports whether a sentence may end immediately after a
// closing quotation mark when the terminal punctuation sits inside the quotes
// (German convention).
func (r *RuleSet) SplitAfterQuote() bool { return r.splitAfterQuote }

// IsAbbreviation reports whether token is a known abbreviation when followed
// by marker. Matching is exact-string and case-sensitive; the data tables
// list every case form that matters.
func (r *RuleSet) IsAbbreviation(token string, marker rune) bool {
	if marker != r.abbrevMarker || token == "" {
		return false
	}
	_, ok := r.abbreviations[token]
	return ok
}

// IsExclamationWord reports whether word forms a known non-terminal
// exclamation ("Yahoo!") with the mark that follows it.
func (r *RuleSet) IsExclamationWord(word string) bool {
	if len(r.exclamations) == 0 || word == "" {
		return false
	}
	_, ok := r.exclamations[word+"!"]
	return ok
}

// IsOrdinalToken reports whether token is an ordinal marker that binds to a
// following number ("No." + digit).
func (r *RuleSet) IsOrdinalToken(token string) bool {
	return ordinalTokenRe.MatchString(token)
}

// IsNumberedListToken reports whether token is a bare list number ("1.").
func (r *RuleSet) IsNumberedListToken(token string) bool {
	if token == "" {
		return false
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// NumberedReference returns the length in bytes of a citation cluster like
// "[7][8]" at the start of tail, or 0 when there is none.
func (r *RuleSet) NumberedReference(tail string) int {
	return len(numberedRefRe.FindString(tail))
}

// LastWord extracts the token immediately preceding a candidate mark: the
// text is split on whitespace and periods, the final fragment is trimmed of
// surrounding non-word characters, and language-specific elision prefixes
// (Italian "l'") are stripped.
func (r *RuleSet) LastWord(head string) string {
	i := len(head)
	for i > 0 {
		c := head[i-1]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '.' {
			break
		}
		i--
	}
	word := head[i:]
	word = strings.TrimFunc(word, func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
	for _, prefix := range r.lastWordTrims {
		if j := strings.LastIndex(word, prefix); j >= 0 {
			word = word[j+len(prefix):]
		}
	}
	return word
}

// ContinuesNextWord reports whether tail (the text after a terminal run)
// starts in a way that marks the following clause as a continuation of the
// current sentence rather than a new one.
func (r *RuleSet) ContinuesNextWord(tail string) bool {
	switch r.continuation {
	case ContinueNone:
		return false
	case ContinueSkip:
		if skipLatinRe.MatchString(tail) {
			return true
		}
	case ContinueSkipCyrillic:
		if skipCyrillicRe.MatchString(tail) {
			return true
		}
	case ContinueTightCyrillic:
		c, ok := firstRune(strings.TrimLeftFunc(tail, unicode.IsSpace))
		if !ok {
			return false
		}
		return isASCIILowerDigit(c) || (c >= 'а' && c <= 'я') || c == 'ё'
	default: // ContinueTight
		c, ok := firstRune(strings.TrimLeftFunc(tail, unicode.IsSpace))
		if !ok {
			return false
		}
		return isASCIILowerDigit(c)
	}
	return r.monthFollows(tail)
}

// monthFollows reports whether the first word after the mark is a month name
// in this language (date forms like "22. Januar" must not split).
func (r *RuleSet) monthFollows(tail string) bool {
	if len(r.months) == 0 {
		return false
	}
	word := firstWord(strings.TrimSpace(tail))
	word = strings.Trim(word, "?!.")
	if word == "" {
		return false
	}
	if _, ok := r.months[word]; ok {
		return true
	}
	_, ok := r.months[titleCaser.String(word)]
	return ok
}

func isASCIILowerDigit(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

func firstRune(s string) (rune, bool) {
	for _, c := range s {
		return c, true
	}
	return 0, false
}
