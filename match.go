package handbook

import (
	"strings"
	"unicode"
)

// MatchRule names the condition that selected a section during resolution.
type MatchRule int

// MatchRule constants in evaluation order.
const (
	// RuleLabel: the normalized label contains the query.
	RuleLabel MatchRule = iota + 1
	// RuleKeyword: a normalized keyword contains the query.
	RuleKeyword
	// RuleQueryContainsKeyword: the query contains a normalized keyword.
	RuleQueryContainsKeyword
)

func (r MatchRule) String() string {
	switch r {
	case RuleLabel:
		return "label"
	case RuleKeyword:
		return "keyword"
	case RuleQueryContainsKeyword:
		return "query-contains-keyword"
	default:
		return "none"
	}
}

// Match is the outcome of a successful resolution.
type Match struct {
	ID      SectionID
	Rule    MatchRule
	Keyword string // keyword that fired; empty for RuleLabel
}

// Normalize lower-cases s and removes every whitespace character, as
// defined by isSpace.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// isSpace reports whether r is a space separator (Zs) or one of the control
// and separator characters below. U+0085 is not whitespace here.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Resolve maps a free-text query to a section. Sections are scanned in
// catalog order and the first one satisfying any rule wins; within a
// section the rules are tried in MatchRule order. Returns false when the
// query is blank or nothing matches.
func Resolve(c *Catalog, query string) (Match, bool) {
	if strings.TrimFunc(query, isSpace) == "" {
		return Match{}, false
	}
	q := Normalize(query)

	for _, id := range c.order {
		s := c.sections[id]
		if strings.Contains(Normalize(s.Label), q) {
			return Match{ID: id, Rule: RuleLabel}, true
		}
		for _, k := range s.Keywords {
			if strings.Contains(Normalize(k), q) {
				return Match{ID: id, Rule: RuleKeyword, Keyword: k}, true
			}
		}
		for _, k := range s.Keywords {
			if strings.Contains(q, Normalize(k)) {
				return Match{ID: id, Rule: RuleQueryContainsKeyword, Keyword: k}, true
			}
		}
	}

	return Match{}, false
}
