package rules

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// firstWord returns the first UAX#29 word token in s that contains a letter
// or digit. Leading punctuation and whitespace tokens are skipped.
func firstWord(s string) string {
	tokens := words.FromString(s)
	for tokens.Next() {
		tok := tokens.Value()
		for _, c := range tok {
			if unicode.IsLetter(c) || unicode.IsDigit(c) {
				return tok
			}
		}
	}
	return ""
}
