package rules

import (
	"strings"

	"golang.org/x/text/language"
)

// Resolve maps a language code to a RuleSet. It never fails: unknown,
// malformed, or undefined codes walk their precomputed fallback probe list
// and ultimately land on the root RuleSet. Resolution is deterministic; the
// same code always yields the same *RuleSet for the corpus lifetime.
func (c *Corpus) Resolve(code string) *RuleSet {
	code = normalize(code)

	if rs, ok := c.sets[code]; ok {
		return rs
	}

	// Probe the precomputed chain for the code itself, then for its BCP-47
	// base ("pt-BR" resolves through "pt").
	if rs := c.probe(code); rs != nil {
		return rs
	}
	if base := baseOf(code); base != "" && base != code {
		if rs, ok := c.sets[base]; ok {
			return rs
		}
		if rs := c.probe(base); rs != nil {
			return rs
		}
	}

	return c.sets[c.root]
}

// probe walks the flattened fallback list for code, returning the first
// defined RuleSet, or nil when the code has no chain or no entry is defined.
func (c *Corpus) probe(code string) *RuleSet {
	for _, candidate := range c.probes[code] {
		if rs, ok := c.sets[candidate]; ok {
			return rs
		}
	}
	return nil
}

// normalize lowercases a code and unifies separators so "PT_br" and "pt-BR"
// resolve identically.
func normalize(code string) string {
	code = strings.TrimSpace(strings.ToLower(code))
	return strings.ReplaceAll(code, "_", "-")
}

// baseOf reduces a code to its primary language subtag. Tags the BCP-47
// parser rejects fall back to a plain prefix cut; parsing failures are not
// errors anywhere in resolution.
func baseOf(code string) string {
	if tag, err := language.Parse(code); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			return base.String()
		}
	}
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return ""
}
