package lang

import (
	"fmt"
	"strings"

	"github.com/fenwicklabs/lexigram/puzzle"
)

// parser walks a token slice produced by lex, building a puzzle.Question.
// It is a small hand-rolled recursive-descent parser (no parser
// generator in the pack), with '+' binding tighter than the implicit
// space-separated slot boundary and '/' only ever appearing inside a
// parenthesised group -- this mirrors word_lang_parser.rs's pest
// grammar precedence (term < conjunction < disjunction) without
// needing a grammar file.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) advance() Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...any) error {
	tok := p.peek()
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: tok.Pos, Token: tok.Text}
}

// Parse turns DSL surface syntax into a puzzle.Question. This is the
// single entry point package driver and cmd/lexigram call.
func Parse(input string) (*puzzle.Question, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}

	left, err := p.parseTupleExpr()
	if err != nil {
		return nil, err
	}

	switch p.peek().Kind {
	case TokEqAnagram, TokEqSpoonerism:
		op := puzzle.EqualityAnagram
		if p.peek().Kind == TokEqSpoonerism {
			op = puzzle.EqualitySpoonerism
		}
		p.advance()

		right, err := p.parseEquationSide(op)
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != TokEOF {
			return nil, p.errorf("unexpected trailing input")
		}
		return &puzzle.Question{
			Kind: puzzle.QuestionEquation,
			Equation: &puzzle.Equation{
				Left:     left,
				Operator: op,
				Right:    right,
			},
		}, nil
	case TokEOF:
		return &puzzle.Question{Kind: puzzle.QuestionExpression, Expression: left}, nil
	default:
		return nil, p.errorf("unexpected token")
	}
}

// parseEquationSide parses the expression after `=a`/`=s`, allowing it
// to be entirely omitted (e.g. "Emma Darcy =s"): an omitted side is an
// unconstrained placeholder shaped to what the operator requires --
// two wildcard word slots for a spoonerism (which only ever relates
// two-word tuples), one wildcard slot for an anagram.
func (p *parser) parseEquationSide(op puzzle.EqualityOperator) (puzzle.Expression, error) {
	if p.peek().Kind == TokEOF {
		if op == puzzle.EqualitySpoonerism {
			return &puzzle.FixedLengthExpression{Words: []puzzle.WordQueryTerm{anyTerm(), anyTerm()}}, nil
		}
		return &puzzle.FixedLengthExpression{Words: []puzzle.WordQueryTerm{anyTerm()}}, nil
	}
	return p.parseTupleExpr()
}

func anyTerm() puzzle.WordQueryTerm {
	return puzzle.WordQueryTerm{Alternatives: []puzzle.WordQuery{{Kind: puzzle.WordQueryAny}}}
}

// parseTupleExpr parses everything up to (but not consuming) an
// equation operator or EOF: either a bare "!ident" phrase expression,
// the standalone "**" many-any placeholder, or a space-separated run
// of word-query slots.
func (p *parser) parseTupleExpr() (puzzle.Expression, error) {
	if p.peek().Kind == TokBang {
		p.advance()
		return phraseExpression(), nil
	}
	if p.peek().Kind == TokWord && p.peek().Text == "**" {
		p.advance()
		return &puzzle.ManyExpression{Type: puzzle.ManyAny, Terms: []puzzle.WordQueryTerm{anyTerm()}, MinWords: 2, MaxWords: 2}, nil
	}

	var slots []puzzle.WordQueryTerm
	for {
		switch p.peek().Kind {
		case TokEOF, TokEqAnagram, TokEqSpoonerism:
			if len(slots) == 0 {
				return nil, p.errorf("expected at least one word slot")
			}
			return &puzzle.FixedLengthExpression{Words: slots}, nil
		}
		slot, err := p.parseSlot()
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
}

// phraseLongestWords bounds Many(Phrase)'s MaxWords at the longest
// built-in skeleton in puzzle.phraseCatalogue (currently "the #j #n").
const phraseLongestWords = 3

func phraseExpression() puzzle.Expression {
	return &puzzle.ManyExpression{Type: puzzle.ManyPhrase, MinWords: 1, MaxWords: phraseLongestWords}
}

// parseSlot parses one word-query slot: a chain of atoms joined by
// '+' (conjunction). A single atom needs no wrapping; more than one
// collapses into a WordQueryAll the way "#n + @c*" does in the
// built-in phrase catalogue.
func (p *parser) parseSlot() (puzzle.WordQueryTerm, error) {
	q, err := p.parseConjChain()
	if err != nil {
		return puzzle.WordQueryTerm{}, err
	}
	return puzzle.WordQueryTerm{Alternatives: []puzzle.WordQuery{q}}, nil
}

// parseConjChain parses atom ('+' atom)*, collapsing a single atom
// directly and multiple atoms into a WordQueryAll conjunction.
func (p *parser) parseConjChain() (puzzle.WordQuery, error) {
	first, err := p.parseAtom()
	if err != nil {
		return puzzle.WordQuery{}, err
	}
	atoms := []puzzle.WordQuery{first}
	for p.peek().Kind == TokPlus {
		p.advance()
		next, err := p.parseAtom()
		if err != nil {
			return puzzle.WordQuery{}, err
		}
		atoms = append(atoms, next)
	}
	if len(atoms) == 1 {
		return atoms[0], nil
	}
	return puzzle.WordQuery{Kind: puzzle.WordQueryAll, SubQueries: atoms}, nil
}

// parseAtom parses one atomic term: a literal/pattern/wildcard word,
// a `#pos`/`#tag` predicate, a `@v`/`@c` first-letter class, a length
// or range, or a parenthesised disjunction group.
func (p *parser) parseAtom() (puzzle.WordQuery, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokLParen:
		return p.parseNestedGroup()
	case TokWord:
		p.advance()
		if tok.Text == "*" {
			return puzzle.WordQuery{Kind: puzzle.WordQueryAny}, nil
		}
		if isPatternText(tok.Text) {
			pat, err := puzzle.ParsePattern(tok.Text)
			if err != nil {
				return puzzle.WordQuery{}, &ParseError{Message: err.Error(), Pos: tok.Pos, Token: tok.Text}
			}
			return puzzle.WordQuery{Kind: puzzle.WordQueryPattern, Pattern: pat}, nil
		}
		return puzzle.WordQuery{Kind: puzzle.WordQueryLiteral, Literal: tok.Text}, nil
	case TokHash:
		p.advance()
		if pos, err := puzzle.ParsePartOfSpeech(tok.Text); err == nil {
			return puzzle.WordQuery{Kind: puzzle.WordQueryPartOfSpeech, PartOfSpeech: pos}, nil
		}
		if t, err := puzzle.ParseWordTag(tok.Text); err == nil {
			return puzzle.WordQuery{Kind: puzzle.WordQueryTag, Tag: t}, nil
		}
		return puzzle.WordQuery{}, &ParseError{Message: fmt.Sprintf("unknown part of speech or tag %q", tok.Text), Pos: tok.Pos, Token: tok.Text}
	case TokAt:
		p.advance()
		if len(tok.Text) == 0 {
			return puzzle.WordQuery{}, &ParseError{Message: "empty character class", Pos: tok.Pos}
		}
		switch tok.Text[0] {
		case 'v', 'c':
			return puzzle.WordQuery{Kind: puzzle.WordQueryFirstLetterClass, FirstLetter: tok.Text[0]}, nil
		default:
			return puzzle.WordQuery{}, &ParseError{Message: fmt.Sprintf("unknown character class %q", tok.Text), Pos: tok.Pos, Token: tok.Text}
		}
	case TokInt:
		p.advance()
		return puzzle.WordQuery{Kind: puzzle.WordQueryLength, Length: tok.IntValue}, nil
	case TokRange:
		p.advance()
		return puzzle.WordQuery{Kind: puzzle.WordQueryRange, Min: tok.IntValue, Max: tok.RangeMax}, nil
	default:
		return puzzle.WordQuery{}, p.errorf("unexpected token, expected a word-query term")
	}
}

// parseNestedGroup parses "(" conjChain ("/" conjChain)* ")", the only
// place disjunction is recognised, matching the surface table's
// "(A / B)" production.
func (p *parser) parseNestedGroup() (puzzle.WordQuery, error) {
	p.advance() // consume '('
	first, err := p.parseConjChain()
	if err != nil {
		return puzzle.WordQuery{}, err
	}
	branches := []puzzle.WordQuery{first}
	for p.peek().Kind == TokSlash {
		p.advance()
		next, err := p.parseConjChain()
		if err != nil {
			return puzzle.WordQuery{}, err
		}
		branches = append(branches, next)
	}
	if p.peek().Kind != TokRParen {
		return puzzle.WordQuery{}, p.errorf("expected ')'")
	}
	p.advance()
	return puzzle.WordQuery{Kind: puzzle.WordQueryNested, Nested: &puzzle.WordQueryTerm{Alternatives: branches}}, nil
}

// isPatternText reports whether a bare word token contains pattern
// wildcards ('?' or '*', anywhere in the token) rather than being a
// plain literal. A solitary "*" never reaches here: parseAtom handles
// it as the wildcard first.
func isPatternText(s string) bool {
	return strings.ContainsAny(s, "?*")
}
