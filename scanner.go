package sentseg

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/jamesainslie/go-sentseg/rules"
)

type candidateKind uint8

const (
	// candTerminalRun is a run of terminal punctuation, coalesced so that
	// ellipses and "?!" produce a single classification decision.
	candTerminalRun candidateKind = iota
	// candParagraph is a run of two or more newlines, which forces a
	// boundary regardless of punctuation.
	candParagraph
)

// candidate is a potential sentence boundary found by the scanner.
type candidate struct {
	kind     candidateKind
	runStart int // byte offset of the first mark in the run
	runEnd   int // byte offset just past the last mark
	depth    int // quotation/bracket nesting depth at runStart

	// closeAfter is the byte offset just past a closing quote that would
	// return the nesting depth to zero, when that closer immediately
	// follows the run. Zero otherwise.
	closeAfter int
}

// scanner makes a single forward pass over the input, emitting boundary
// candidates while tracking quotation and bracket nesting. It never copies
// input text; candidates are byte offsets into the original buffer.
type scanner struct {
	text  string
	rs    *rules.RuleSet
	pos   int
	stack []rune // expected closers, innermost last
}

func newScanner(text string, rs *rules.RuleSet) *scanner {
	return &scanner{text: text, rs: rs}
}

// next returns the next boundary candidate, or false at end of input.
func (s *scanner) next() (candidate, bool) {
	for s.pos < len(s.text) {
		cluster := s.grapheme(s.pos)
		c, _ := utf8.DecodeRuneInString(cluster)

		switch {
		case c == '\n':
			start := s.pos
			newlines := s.consumeNewlines()
			if newlines >= 2 {
				return candidate{
					kind:     candParagraph,
					runStart: start,
					runEnd:   s.pos,
					depth:    len(s.stack),
				}, true
			}

		case s.rs.IsTerminal(c):
			return s.terminalRun(len(cluster)), true

		default:
			s.track(c)
			s.pos += len(cluster)
		}
	}
	return candidate{}, false
}

// terminalRun coalesces consecutive terminal marks into one candidate
// anchored at the run's end.
func (s *scanner) terminalRun(firstLen int) candidate {
	cand := candidate{
		kind:     candTerminalRun,
		runStart: s.pos,
		depth:    len(s.stack),
	}

	j := s.pos + firstLen
	for j < len(s.text) {
		cluster := s.grapheme(j)
		c, _ := utf8.DecodeRuneInString(cluster)
		if !s.rs.IsTerminal(c) {
			break
		}
		j += len(cluster)
	}
	cand.runEnd = j

	// Record whether the very next rune closes the outermost quotation, so
	// the classifier can split after the closer where the language allows.
	if len(s.stack) == 1 && j < len(s.text) {
		cluster := s.grapheme(j)
		c, _ := utf8.DecodeRuneInString(cluster)
		if c == s.stack[0] {
			cand.closeAfter = j + len(cluster)
		}
	}

	s.pos = j
	return cand
}

// consumeNewlines advances past a run of newlines (tolerating carriage
// returns) and returns how many newlines it saw.
func (s *scanner) consumeNewlines() int {
	n := 0
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if c == '\n' {
			n++
			s.pos++
			continue
		}
		if c == '\r' {
			s.pos++
			continue
		}
		break
	}
	return n
}

// track updates quotation/bracket nesting for one rune. A rune matching the
// expected closer pops; a recognized opener pushes its closer; anything
// else, including unmatched closers, is ignored so depth never goes
// negative.
func (s *scanner) track(c rune) {
	if n := len(s.stack); n > 0 && c == s.stack[n-1] {
		s.stack = s.stack[:n-1]
		return
	}
	if closer, ok := s.rs.CloserFor(c); ok {
		s.stack = append(s.stack, closer)
	}
}

// grapheme returns the grapheme cluster starting at byte offset i. The
// scanner advances cluster-by-cluster so combining sequences are never
// split.
func (s *scanner) grapheme(i int) string {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s.text[i:], -1)
	return cluster
}
