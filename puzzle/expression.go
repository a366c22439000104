package puzzle

import "fmt"

// AnagramSettings bounds how the anagram enumerator walks a
// dictionary for a given expression: the shortest word it should
// consider, and the largest number of words a tuple may combine.
type AnagramSettings struct {
	MinWordLength uint8
	MaxWords      int
}

// DefaultAnagramSettings matches the original's Default impl.
var DefaultAnagramSettings = AnagramSettings{MinWordLength: 3, MaxWords: 3}

// AllowKey reports whether a candidate key's length clears the
// minimum word length floor.
func (s AnagramSettings) AllowKey(key AnagramKey) bool {
	return key.Len >= s.MinWordLength
}

// Expression is a typed tuple-of-words query: something that can be
// solved against a dictionary to produce a stream of Solutions, and
// that the equation planner (equation.go) can interrogate for cost
// estimation before committing to brute-force enumeration.
type Expression interface {
	// CountOptions returns, for each word slot, how many dictionary
	// entries satisfy it (used by the planner's generator/consumer
	// side selection and by the cost gate).
	CountOptions(dict *TermDict) []int
	// CountLiteralChars returns the total rune count contributed by
	// literal word slots (used by the equation planner's cost
	// estimate when no literals are extracted).
	CountLiteralChars() int
	// AllowNumberOfWords reports whether a tuple of exactly n words
	// could possibly satisfy this expression.
	AllowNumberOfWords(n int) bool
	// Allow reports whether a specific ordered tuple of homographs
	// satisfies every slot, trying every permutation of slot
	// assignment (order_to_allow) since slot order in the surface
	// syntax need not match word order in a candidate solution.
	Allow(words []Homograph) bool
	// Solve lazily enumerates every tuple of homographs satisfying
	// the expression, in dictionary order.
	Solve(dict *TermDict) *TupleIterator
}

// FixedLengthExpression is a sequence of word slots of a statically
// known count: each surface-syntax query like `c???t + *e*` compiles
// to one of these with len(Words) == number of space-separated terms.
type FixedLengthExpression struct {
	Words []WordQueryTerm
}

func (e *FixedLengthExpression) CountOptions(dict *TermDict) []int {
	counts := make([]int, len(e.Words))
	for i, w := range e.Words {
		counts[i] = len(w.Solve(dict))
	}
	return counts
}

func (e *FixedLengthExpression) CountLiteralChars() int {
	n := 0
	for _, w := range e.Words {
		if w.IsLiteral() {
			n += len([]rune(w.Alternatives[0].Literal))
		}
	}
	return n
}

func (e *FixedLengthExpression) AllowNumberOfWords(n int) bool {
	return n == len(e.Words)
}

func (e *FixedLengthExpression) Allow(words []Homograph) bool {
	if len(words) != len(e.Words) {
		return false
	}
	return orderToAllow(e.Words, words)
}

// orderToAllow brute-force searches permutations of slot assignment
// for one under which every word satisfies its assigned slot. Ported
// from the original's order_to_allow: bounded by len(terms)! which is
// only ever called with the small tuples the surface syntax produces
// (equation.go's literal-extraction keeps tuples short).
func orderToAllow(terms []WordQueryTerm, words []Homograph) bool {
	_, ok := matchSlots(terms, words)
	return ok
}

// matchSlots is order_to_allow's full form: it returns the words
// reordered so that words[i] satisfies terms[i], trying permutations
// of the slot assignment until one works (or reporting failure).
// Needed whenever a caller must emit an unordered candidate tuple
// (typically the anagram enumerator's output) in the slot order a
// FixedLengthExpression actually describes.
func matchSlots(terms []WordQueryTerm, words []Homograph) ([]Homograph, bool) {
	n := len(terms)
	if len(words) != n {
		return nil, false
	}
	used := make([]bool, n)
	assign := make([]int, n)
	var try func(slot int) bool
	try = func(slot int) bool {
		if slot == n {
			return true
		}
		for wi := 0; wi < n; wi++ {
			if used[wi] {
				continue
			}
			if !terms[slot].Allow(words[wi]) {
				continue
			}
			used[wi] = true
			assign[slot] = wi
			if try(slot + 1) {
				return true
			}
			used[wi] = false
		}
		return false
	}
	if !try(0) {
		return nil, false
	}
	out := make([]Homograph, n)
	for slot, wi := range assign {
		out[slot] = words[wi]
	}
	return out, true
}

// OrderToAllow is matchSlots exposed for e's own terms, used by the
// equation planner to align an anagram-enumerated candidate tuple
// (whose word order is an artifact of dictionary iteration, not slot
// order) with e's slots before emitting it as a solution.
func (e *FixedLengthExpression) OrderToAllow(words []Homograph) ([]Homograph, bool) {
	return matchSlots(e.Words, words)
}

// ExtractLiterals splits e's literal slots out from the rest,
// returning a residue expression over only the non-literal slots, the
// combined AnagramKey of the literal slots' text, and a map from
// original slot index to literal text for later hydration. ok is
// false when e has no literal slots at all (nothing to extract).
func (e *FixedLengthExpression) ExtractLiterals() (residue *FixedLengthExpression, literalKey AnagramKey, literalAt map[int]string, ok bool) {
	literalKey = Empty
	literalAt = make(map[int]string)
	var nonLiteral []WordQueryTerm
	found := false
	for i, w := range e.Words {
		if !w.IsLiteral() {
			nonLiteral = append(nonLiteral, w)
			continue
		}
		found = true
		text := w.Alternatives[0].Literal
		key, err := ParseAnagramKey(text)
		if err != nil {
			return nil, AnagramKey{}, nil, false
		}
		next, okAdd := literalKey.Add(key)
		if !okAdd {
			return nil, AnagramKey{}, nil, false
		}
		literalKey = next
		literalAt[i] = text
	}
	if !found {
		return nil, AnagramKey{}, nil, false
	}
	return &FixedLengthExpression{Words: nonLiteral}, literalKey, literalAt, true
}

// HydrateLiterals reinserts literalAt's text-only slots back into
// residueTuple at their original positions, resolving each literal's
// text to a full Homograph via ctx so the rendered solution carries
// real meanings rather than a bare string. totalSlots is the original
// (pre-extraction) expression's slot count.
func HydrateLiterals(ctx *WordContext, totalSlots int, literalAt map[int]string, residueTuple []Homograph) []Homograph {
	out := make([]Homograph, totalSlots)
	ri := 0
	for i := 0; i < totalSlots; i++ {
		if text, isLiteral := literalAt[i]; isLiteral {
			if h, found := ctx.Terms.TryFind(text); found {
				out[i] = h
			} else {
				out[i] = Homograph{Text: text, IsSingleWord: true}
			}
			continue
		}
		out[i] = residueTuple[ri]
		ri++
	}
	return out
}

// Solve enumerates every tuple of homographs satisfying e, one slot
// at a time, via a nested pull-model cartesian join: advancing the
// rightmost slot first and carrying into earlier slots on exhaustion,
// exactly mirroring FixedLengthExpression::solve's multi_cartesian_product.
func (e *FixedLengthExpression) Solve(dict *TermDict) *TupleIterator {
	options := make([][]Homograph, len(e.Words))
	for i, w := range e.Words {
		options[i] = w.Solve(dict)
	}
	return newCartesianIterator(options)
}

// TupleIterator is a hand-rolled pull-model iterator over []Homograph
// tuples: Next returns the next tuple and true, or (nil, false) once
// exhausted. Used uniformly by every Expression implementation and by
// the equation planner's consumer-side iteration.
type TupleIterator struct {
	next func() ([]Homograph, bool)
}

func (it *TupleIterator) Next() ([]Homograph, bool) {
	if it == nil || it.next == nil {
		return nil, false
	}
	return it.next()
}

func newCartesianIterator(options [][]Homograph) *TupleIterator {
	n := len(options)
	for _, opt := range options {
		if len(opt) == 0 {
			return &TupleIterator{next: func() ([]Homograph, bool) { return nil, false }}
		}
	}
	idx := make([]int, n)
	started := false
	finished := n == 0

	return &TupleIterator{next: func() ([]Homograph, bool) {
		if finished {
			return nil, false
		}
		if !started {
			started = true
		} else {
			i := n - 1
			for i >= 0 {
				idx[i]++
				if idx[i] < len(options[i]) {
					break
				}
				idx[i] = 0
				i--
			}
			if i < 0 {
				finished = true
				return nil, false
			}
		}
		tuple := make([]Homograph, n)
		for i := range tuple {
			tuple[i] = options[i][idx[i]]
		}
		return tuple, true
	}}
}

// ManyExpressionType distinguishes an open-ended "any number of
// words, each matching the same constraint" expression from a
// "phrase" expression matched against the built-in skeleton catalogue
// (see phrasecatalogue.go).
type ManyExpressionType int

const (
	ManyAny ManyExpressionType = iota
	ManyPhrase
)

// ManyExpression is a variable-length tuple query: either "!n words
// each matching terms[0]" (ManyAny) or "a phrase matching one of the
// built-in skeletons, itself made of between MinWords and MaxWords
// words" (ManyPhrase).
type ManyExpression struct {
	Type     ManyExpressionType
	Terms    []WordQueryTerm
	MinWords int
	MaxWords int // -1 means unbounded
}

func (e *ManyExpression) AllowNumberOfWords(n int) bool {
	if n < e.MinWords {
		return false
	}
	if e.MaxWords >= 0 && n > e.MaxWords {
		return false
	}
	return true
}

func (e *ManyExpression) CountLiteralChars() int {
	return 0
}

func (e *ManyExpression) CountOptions(dict *TermDict) []int {
	switch e.Type {
	case ManyAny:
		return []int{len(e.Terms[0].Solve(dict))}
	case ManyPhrase:
		total := 0
		for _, skeleton := range phraseCatalogue {
			n := 1
			for _, term := range skeleton.Words {
				n *= len(term.Solve(dict))
			}
			total += n
		}
		return []int{total}
	default:
		return nil
	}
}

func (e *ManyExpression) Allow(words []Homograph) bool {
	switch e.Type {
	case ManyAny:
		if !e.AllowNumberOfWords(len(words)) {
			return false
		}
		for _, w := range words {
			if !e.Terms[0].Allow(w) {
				return false
			}
		}
		return true
	case ManyPhrase:
		for _, skeleton := range phraseCatalogue {
			if skeleton.Allow(words) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (e *ManyExpression) Solve(dict *TermDict) *TupleIterator {
	switch e.Type {
	case ManyAny:
		return e.solveAny(dict)
	case ManyPhrase:
		return e.solvePhrase(dict)
	default:
		return &TupleIterator{}
	}
}

// solveAny walks lengths from MinWords up (to MaxWords, or a hard
// safety cap of 6 when unbounded -- matching the cost-gate discipline
// the equation planner applies elsewhere) and chains each length's
// cartesian product.
func (e *ManyExpression) solveAny(dict *TermDict) *TupleIterator {
	options := e.Terms[0].Solve(dict)
	maxWords := e.MaxWords
	if maxWords < 0 {
		maxWords = 6
	}
	n := e.MinWords
	var current *TupleIterator
	advance := func() ([]Homograph, bool) {
		for {
			if current != nil {
				if t, ok := current.Next(); ok {
					return t, true
				}
			}
			if n > maxWords {
				return nil, false
			}
			opts := make([][]Homograph, n)
			for i := range opts {
				opts[i] = options
			}
			current = newCartesianIterator(opts)
			n++
		}
	}
	return &TupleIterator{next: advance}
}

// solvePhrase chains each built-in skeleton's own FixedLengthExpression
// solve in catalogue order, matching the original's PHRASEEXPRESSIONS
// iteration.
func (e *ManyExpression) solvePhrase(dict *TermDict) *TupleIterator {
	i := 0
	var current *TupleIterator
	advance := func() ([]Homograph, bool) {
		for {
			if current != nil {
				if t, ok := current.Next(); ok {
					return t, true
				}
			}
			if i >= len(phraseCatalogue) {
				return nil, false
			}
			current = phraseCatalogue[i].Solve(dict)
			i++
		}
	}
	return &TupleIterator{next: advance}
}

// ErrTooManyWords is returned when an expression's word count cannot
// be reconciled with a requested tuple length at all.
type ErrTooManyWords struct {
	Requested int
}

func (e *ErrTooManyWords) Error() string {
	return fmt.Sprintf("no expression shape accepts %d words", e.Requested)
}
