package puzzle

import "strings"

// WordQuery is one atomic constraint a word (or word slot) must
// satisfy: an exact literal, a part-of-speech/tag requirement, a
// length bound, a pattern, or the unconstrained wildcard.
type WordQuery struct {
	Kind         WordQueryKind
	Literal      string
	PartOfSpeech PartOfSpeech
	Tag          WordTag
	Min, Max     int // Kind == WordQueryRange; Max == -1 means unbounded
	Length       int // Kind == WordQueryLength
	Pattern      *Pattern
	FirstLetter  byte         // Kind == WordQueryFirstLetterClass: 'c' or 'v'
	SubQueries   []WordQuery  // Kind == WordQueryAll: every element must match (conjunction)
	Nested       *WordQueryTerm // Kind == WordQueryNested: a parenthesised disjunction group
}

type WordQueryKind int

const (
	WordQueryLiteral WordQueryKind = iota
	WordQueryPartOfSpeech
	WordQueryTag
	WordQueryAny
	WordQueryRange
	WordQueryLength
	WordQueryPattern
	// WordQueryFirstLetterClass matches words starting with a
	// consonant ('c') or vowel ('v') — grounds the "@c*"/"@v*"
	// productions in the built-in phrase skeleton catalogue.
	WordQueryFirstLetterClass
	// WordQueryAll is the conjunction of SubQueries, grounding the
	// "+" combinator (e.g. "#n + @c*": noun AND consonant-starting).
	WordQueryAll
	// WordQueryNested wraps a parenthesised disjunction group, e.g.
	// "(#n / #v)", so it can be used as a single atom inside a larger
	// "+" conjunction chain.
	WordQueryNested
)

var vowels = map[byte]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true}

// IsLiteral reports whether q is pinned to one exact word, matching
// the original's is_literal (used by the equation planner to decide
// whether a whole expression is "all literal" and can skip the
// anagram enumerator entirely).
func (q WordQuery) IsLiteral() bool {
	return q.Kind == WordQueryLiteral
}

// Allow reports whether h satisfies q.
func (q WordQuery) Allow(h Homograph) bool {
	switch q.Kind {
	case WordQueryLiteral:
		return strings.EqualFold(h.Text, q.Literal)
	case WordQueryPartOfSpeech:
		return h.HasPartOfSpeech(q.PartOfSpeech)
	case WordQueryTag:
		return h.HasTag(q.Tag)
	case WordQueryAny:
		return true
	case WordQueryRange:
		n := len([]rune(h.Text))
		if n < q.Min {
			return false
		}
		if q.Max >= 0 && n > q.Max {
			return false
		}
		return true
	case WordQueryLength:
		return len([]rune(h.Text)) == q.Length
	case WordQueryPattern:
		return q.Pattern.Matches(h.Text)
	case WordQueryFirstLetterClass:
		if len(h.Text) == 0 {
			return false
		}
		isVowel := vowels[strings.ToLower(h.Text)[0]]
		if q.FirstLetter == 'v' {
			return isVowel
		}
		return !isVowel
	case WordQueryAll:
		for _, sub := range q.SubQueries {
			if !sub.Allow(h) {
				return false
			}
		}
		return true
	case WordQueryNested:
		return q.Nested.Allow(h)
	default:
		return false
	}
}

// WordQueryTerm is a disjunction of WordQuery alternatives joined by
// `/` in the surface syntax (e.g. the inside of `(#n / #v)`): a word matches the term if
// it satisfies any alternative. A single-element term is the common
// case and carries no extra cost.
type WordQueryTerm struct {
	Alternatives []WordQuery
}

func (t WordQueryTerm) Allow(h Homograph) bool {
	for _, q := range t.Alternatives {
		if q.Allow(h) {
			return true
		}
	}
	return false
}

// IsLiteral reports whether t is a single literal alternative.
func (t WordQueryTerm) IsLiteral() bool {
	return len(t.Alternatives) == 1 && t.Alternatives[0].IsLiteral()
}

// Solve filters dict's homographs down to those t allows, preserving
// dictionary order. Used by the Expression implementations' Solve and
// CountOptions.
func (t WordQueryTerm) Solve(dict *TermDict) []Homograph {
	var out []Homograph
	for _, h := range dict.Homographs {
		if t.Allow(h) {
			out = append(out, h)
		}
	}
	return out
}
