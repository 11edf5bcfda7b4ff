package rules

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for corpus construction. After construction nothing in
// this package fails.
var (
	// ErrCorruptData indicates the rule data source failed to parse.
	ErrCorruptData = errors.New("rules: corrupt rule data")

	// ErrCyclicFallback indicates the fallback table contains a cycle.
	ErrCyclicFallback = errors.New("rules: cyclic fallback chain")

	// ErrNoRootRuleSet indicates the root language has no RuleSet defined.
	ErrNoRootRuleSet = errors.New("rules: root language has no rule set")
)

//go:embed data/languages.json
var languagesJSON []byte

//go:embed data/fallbacks.json
var fallbacksJSON []byte

// globalTerminals are the marks that can end a sentence in any language
// unless the language replaces the set outright.
var globalTerminals = []rune{
	'.', '!', '?', '…',
	'؟', '۔', // Arabic
	'।', '॥', // Devanagari and friends
	'።',      // Ethiopic
	'。', '．', '！', '？', // CJK and fullwidth
	'‼', '⁇', '⁈', '⁉',
}

// globalPairs maps opening quotation and bracket marks to their closers.
// Symmetric marks (straight double quote) toggle. The straight apostrophe is
// deliberately absent: treating it as a quote would leave contractions
// ("don't") open to end of input.
var globalPairs = map[rune]rune{
	'"': '"',
	'“': '”',
	'‘': '’',
	'„': '“',
	'‚': '‘',
	'«': '»',
	'‹': '›',
	'(': ')',
	'[': ']',
	'{': '}',
	'⟨': '⟩',
	'（': '）',
	'「': '」',
	'『': '』',
	'【': '】',
	'｢': '｣',
}

// languageData is the on-disk shape of one language entry.
type languageData struct {
	Abbreviations []string `json:"abbreviations,omitempty"`
	Exclamations  []string `json:"exclamations,omitempty"`
	Months        []string `json:"months,omitempty"`

	// Terminals replaces the global terminal set; ExtraTerminals extends it.
	Terminals      []string `json:"terminals,omitempty"`
	ExtraTerminals []string `json:"extra_terminals,omitempty"`

	// AbbrevMarker defaults to ".".
	AbbrevMarker string `json:"abbrev_marker,omitempty"`

	// Continuation names a continuation policy; defaults to "tight".
	Continuation string `json:"continuation,omitempty"`

	SplitAfterQuote bool     `json:"split_after_quote,omitempty"`
	LastWordTrims   []string `json:"lastword_trims,omitempty"`
}

// fallbackData is the on-disk shape of the fallback table.
type fallbackData struct {
	Root   string              `json:"root"`
	Chains map[string][]string `json:"chains"`
}

// Corpus is the process-wide, read-only rule corpus: every defined RuleSet
// plus the precomputed fallback probe lists. Safe for concurrent use.
type Corpus struct {
	sets   map[string]*RuleSet
	probes map[string][]string
	root   string
}

var (
	defaultCorpus     *Corpus
	defaultCorpusErr  error
	defaultCorpusOnce sync.Once
)

// Default returns the corpus built from the embedded rule data. The corpus
// is built once and shared; it never changes afterwards.
func Default() (*Corpus, error) {
	defaultCorpusOnce.Do(func() {
		defaultCorpus, defaultCorpusErr = Load(languagesJSON, fallbacksJSON)
	})
	return defaultCorpus, defaultCorpusErr
}

// Load builds a Corpus from JSON rule data and a JSON fallback table. The
// fallback table is validated acyclic here; resolution never revisits that.
func Load(langData, fallbackTable []byte) (*Corpus, error) {
	var raw map[string]languageData
	if err := json.Unmarshal(langData, &raw); err != nil {
		return nil, fmt.Errorf("%w: languages: %v", ErrCorruptData, err)
	}

	var fb fallbackData
	if err := json.Unmarshal(fallbackTable, &fb); err != nil {
		return nil, fmt.Errorf("%w: fallbacks: %v", ErrCorruptData, err)
	}
	if fb.Root == "" {
		return nil, fmt.Errorf("%w: fallback table has no root", ErrCorruptData)
	}

	c := &Corpus{
		sets:   make(map[string]*RuleSet, len(raw)),
		probes: make(map[string][]string, len(fb.Chains)),
		root:   fb.Root,
	}

	for code, data := range raw {
		rs, err := compile(code, data)
		if err != nil {
			return nil, err
		}
		c.sets[code] = rs
	}

	if _, ok := c.sets[fb.Root]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoRootRuleSet, fb.Root)
	}

	// Flatten every chain to a plain probe list up front so runtime
	// resolution is a linear walk with no graph traversal.
	for code := range fb.Chains {
		probes, err := flattenChain(code, fb.Chains)
		if err != nil {
			return nil, err
		}
		c.probes[code] = probes
	}

	return c, nil
}

// flattenChain expands one fallback chain transitively, rejecting cycles.
// A cycle is any code that reappears on the expansion path currently being
// walked; the same code reached along two separate branches is fine.
func flattenChain(code string, chains map[string][]string) ([]string, error) {
	var out []string
	onPath := map[string]bool{code: true}

	var walk func(string) error
	walk = func(cur string) error {
		for _, next := range chains[cur] {
			if onPath[next] {
				return fmt.Errorf("%w: %q via %q", ErrCyclicFallback, code, next)
			}
			if !contains(out, next) {
				out = append(out, next)
			}
			onPath[next] = true
			if err := walk(next); err != nil {
				return err
			}
			delete(onPath, next)
		}
		return nil
	}
	if err := walk(code); err != nil {
		return nil, err
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func compile(code string, data languageData) (*RuleSet, error) {
	rs := &RuleSet{
		code:          code,
		abbreviations: toSet(data.Abbreviations),
		exclamations:  toSet(data.Exclamations),
		months:        toSet(data.Months),
		pairs:         globalPairs,
		abbrevMarker:  '.',
		continuation:  ContinueTight,

		splitAfterQuote: data.SplitAfterQuote,
		lastWordTrims:   data.LastWordTrims,
	}

	if data.AbbrevMarker != "" {
		for _, c := range data.AbbrevMarker {
			rs.abbrevMarker = c
			break
		}
	}

	switch data.Continuation {
	case "", ContinueTight:
	case ContinueSkip, ContinueTightCyrillic, ContinueSkipCyrillic, ContinueNone:
		rs.continuation = data.Continuation
	default:
		return nil, fmt.Errorf("%w: language %q: unknown continuation policy %q",
			ErrCorruptData, code, data.Continuation)
	}

	rs.terminals = make(map[rune]struct{})
	if len(data.Terminals) > 0 {
		addRunes(rs.terminals, data.Terminals)
	} else {
		for _, c := range globalTerminals {
			rs.terminals[c] = struct{}{}
		}
		addRunes(rs.terminals, data.ExtraTerminals)
	}

	return rs, nil
}

func toSet(list []string) map[string]struct{} {
	if len(list) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		set[v] = struct{}{}
	}
	return set
}

func addRunes(set map[rune]struct{}, marks []string) {
	for _, mark := range marks {
		for _, c := range mark {
			set[c] = struct{}{}
		}
	}
}

// Languages returns the sorted codes that have a RuleSet defined.
func (c *Corpus) Languages() []string {
	codes := make([]string, 0, len(c.sets))
	for code := range c.sets {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Root returns the code of the root RuleSet every fallback terminates in.
func (c *Corpus) Root() string { return c.root }
