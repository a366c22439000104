package puzzle

import (
	"fmt"
	"sort"
	"strings"
)

// EqualityOperator is the relation an Equation checks between its two
// sides: Anagram requires the same multiset of letters; Spoonerism
// requires a one-character prefix swap between a two-word tuple on
// each side.
type EqualityOperator int

const (
	EqualityAnagram EqualityOperator = iota
	EqualitySpoonerism
)

// Equation pairs two expressions with a relation between them, e.g.
// `c???t + *e* =a cat lover`. The original's Equation::solve was left
// as a stub (`self.left.solve(dict) //TODO`); the planner below is
// this repo's own design, built from the documented behavior rather
// than ported from working Rust.
type Equation struct {
	Left     Expression
	Operator EqualityOperator
	Right    Expression
}

// EquationSolution is one accepted pairing of a left-side tuple with
// a right-side tuple satisfying the equation's operator.
type EquationSolution struct {
	Left  Solution `json:"left"`
	Right Solution `json:"right"`
}

// ErrTooDifficult is returned when neither side of an equation can be
// estimated cheaply enough to enumerate: the planner refuses rather
// than run a search that could take unbounded time.
type ErrTooDifficult struct {
	Estimate int
}

func (e *ErrTooDifficult) Error() string {
	return fmt.Sprintf("equation has an estimated %d candidate combinations, refusing to search", e.Estimate)
}

// maxEquationCost bounds the estimated candidate count a planner will
// attempt to search before refusing with ErrTooDifficult.
const maxEquationCost = 100_000

// EquationIterator lazily produces EquationSolutions.
type EquationIterator struct {
	next func() (EquationSolution, bool)
}

func (it *EquationIterator) Next() (EquationSolution, bool) {
	if it == nil || it.next == nil {
		return EquationSolution{}, false
	}
	return it.next()
}

// Solve plans and executes the equation against ctx. It picks the
// cheaper side to enumerate directly (the "generator") and derives
// matches for the other side (the "consumer") from each generator
// tuple, rather than enumerating both sides independently -- this
// asymmetry is what keeps a query like `c???t + *e* =a cat lover`
// tractable: the left side's pattern already narrows the dictionary
// scan enough that the right side never needs its own full search.
func (eq *Equation) Solve(ctx *WordContext) (*EquationIterator, error) {
	switch eq.Operator {
	case EqualityAnagram:
		return eq.solveAnagram(ctx)
	case EqualitySpoonerism:
		return eq.solveSpoonerism(ctx)
	default:
		return nil, fmt.Errorf("unknown equality operator")
	}
}

func estimateCost(dict *TermDict, e Expression) int {
	counts := e.CountOptions(dict)
	product := 1
	for _, c := range counts {
		if c == 0 {
			return 0
		}
		product *= c
	}
	return product
}

// solveAnagram picks the cheaper side as the generator: its tuples
// are enumerated directly via Expression.Solve, each tuple's combined
// AnagramKey (minus any literal characters already pinned by the
// other side) becomes the target the anagram enumerator searches for
// among the consumer side's allowed homographs.
func (eq *Equation) solveAnagram(ctx *WordContext) (*EquationIterator, error) {
	leftCost := estimateCost(ctx.Terms, eq.Left)
	rightCost := estimateCost(ctx.Terms, eq.Right)

	generator, consumer, generatorIsLeft := eq.Left, eq.Right, true
	genCost := leftCost
	if rightCost != 0 && (leftCost == 0 || rightCost < leftCost) {
		generator, consumer, generatorIsLeft = eq.Right, eq.Left, false
		genCost = rightCost
	}
	if genCost == 0 {
		return &EquationIterator{next: func() (EquationSolution, bool) { return EquationSolution{}, false }}, nil
	}

	// Literal extraction (spec.md §4.8 step 2): when the consumer is a
	// FixedLength expression with literal slots, those slots never
	// need the anagram enumerator at all -- subtract their combined
	// key from the generator's target up front, search only the
	// residue expression's non-literal slots, then hydrate the
	// literals back into their original positions. This removes whole
	// search dimensions instead of merely discounting the cost
	// estimate by a literal-character count.
	effectiveConsumer := consumer
	var literalKey AnagramKey
	var literalAt map[int]string
	var literalTotalSlots int
	hasLiterals := false
	if fle, isFLE := consumer.(*FixedLengthExpression); isFLE {
		if residue, key, at, ok := fle.ExtractLiterals(); ok {
			effectiveConsumer = residue
			literalKey = key
			literalAt = at
			literalTotalSlots = len(fle.Words)
			hasLiterals = true
		}
	}

	estimate := genCost
	if !hasLiterals {
		estimate *= 1 + consumer.CountLiteralChars()
	}
	if estimate > maxEquationCost {
		return nil, &ErrTooDifficult{Estimate: estimate}
	}

	genIter := generator.Solve(ctx.Terms)
	settings := DefaultAnagramSettings

	var consumerIter *TupleIterator
	var genTuple []Homograph

	advance := func() (EquationSolution, bool) {
		for {
			if consumerIter != nil {
				for {
					residueTuple, ok := consumerIter.Next()
					if !ok {
						break
					}
					ordered := residueTuple
					if fleConsumer, isFLE := effectiveConsumer.(*FixedLengthExpression); isFLE {
						ordered, ok = fleConsumer.OrderToAllow(residueTuple)
						if !ok {
							continue
						}
					}
					consumerTuple := ordered
					if hasLiterals {
						consumerTuple = HydrateLiterals(ctx, literalTotalSlots, literalAt, ordered)
					}
					if !consumer.Allow(consumerTuple) {
						continue
					}
					if isTrivialPairing(genTuple, consumerTuple) {
						continue
					}
					left, right := genTuple, consumerTuple
					if !generatorIsLeft {
						left, right = consumerTuple, genTuple
					}
					return EquationSolution{Left: Solution{Homographs: left}, Right: Solution{Homographs: right}}, true
				}
				consumerIter = nil
			}
			var ok bool
			genTuple, ok = genIter.Next()
			if !ok {
				return EquationSolution{}, false
			}
			target, ok := combinedKey(genTuple)
			if !ok {
				continue
			}
			if hasLiterals {
				target, ok = target.Sub(literalKey)
				if !ok {
					continue
				}
			}
			consumerIter = solveConsumerForTarget(ctx, effectiveConsumer, target, settings)
		}
	}
	return &EquationIterator{next: advance}, nil
}

// combinedKey sums the AnagramKeys of every homograph in tuple.
func combinedKey(tuple []Homograph) (AnagramKey, bool) {
	sum := Empty
	for _, h := range tuple {
		k, err := h.Key()
		if err != nil {
			return AnagramKey{}, false
		}
		next, ok := sum.Add(k)
		if !ok {
			return AnagramKey{}, false
		}
		sum = next
	}
	return sum, true
}

// solveConsumerForTarget enumerates combinations of dictionary keys
// summing to target (bounded by consumer's allowed word count and the
// default anagram settings), expands each combination's keys into
// every homograph combination sharing those keys, and streams them as
// tuples for the caller to test against consumer's full constraints
// (part of speech, tags, patterns) -- the anagram enumerator only
// knows about letters, not the rest of a WordQuery.
func solveConsumerForTarget(ctx *WordContext, consumer Expression, target AnagramKey, settings AnagramSettings) *TupleIterator {
	if target.IsEmpty() {
		// Nothing left to spell: the only match is the empty tuple, and
		// only when the consumer accepts zero words (e.g. a residue left
		// after every slot was extracted as a literal).
		emitted := false
		return &TupleIterator{next: func() ([]Homograph, bool) {
			if emitted || !consumer.AllowNumberOfWords(0) {
				return nil, false
			}
			emitted = true
			return []Homograph{}, true
		}}
	}
	it := NewAnagramIterator(ctx.Anagrams, target, settings)
	var pending []([]Homograph)
	var pendingIdx int

	advance := func() ([]Homograph, bool) {
		for {
			if pendingIdx < len(pending) {
				t := pending[pendingIdx]
				pendingIdx++
				return t, true
			}
			keys, ok := it.Next()
			if !ok {
				return nil, false
			}
			if !consumer.AllowNumberOfWords(len(keys)) {
				continue
			}
			groups := make([][]Homograph, len(keys))
			for i, k := range keys {
				homographs, ok := ctx.Anagrams.Get(k)
				if !ok {
					groups = nil
					break
				}
				groups[i] = homographs
			}
			if groups == nil {
				continue
			}
			pending = expandCombinations(groups)
			pendingIdx = 0
		}
	}
	return &TupleIterator{next: advance}
}

// expandCombinations turns a slice of per-key homograph groups into
// every ordered tuple choosing one homograph per group -- a small
// cartesian product, typically over 1-3 groups with a handful of
// homographs each.
func expandCombinations(groups [][]Homograph) [][]Homograph {
	if len(groups) == 0 {
		return nil
	}
	result := [][]Homograph{{}}
	for _, group := range groups {
		var next [][]Homograph
		for _, partial := range result {
			for _, h := range group {
				tuple := append(append([]Homograph(nil), partial...), h)
				next = append(next, tuple)
			}
		}
		result = next
	}
	return result
}

// isTrivialPairing filters out solutions where both sides use the
// exact same multiset of words -- a degenerate "anagram of itself"
// that is technically valid but never an interesting answer.
func isTrivialPairing(left, right []Homograph) bool {
	if len(left) != len(right) {
		return false
	}
	a := wordTexts(left)
	b := wordTexts(right)
	sort.Strings(a)
	sort.Strings(b)
	return strings.Join(a, " ") == strings.Join(b, " ")
}

func wordTexts(tuple []Homograph) []string {
	out := make([]string, len(tuple))
	for i, h := range tuple {
		out[i] = strings.ToLower(h.Text)
	}
	return out
}

// solveSpoonerism matches two-word tuples on the left against
// two-word tuples on the right related by swapping the first
// character of each word (single-character prefix swap only, per the
// resolved open question: "cot pat =s" finds "pot cat" only because
// both swapped forms are themselves dictionary words satisfying the
// right-hand expression).
func (eq *Equation) solveSpoonerism(ctx *WordContext) (*EquationIterator, error) {
	leftFixed, ok := eq.Left.(*FixedLengthExpression)
	if !ok || len(leftFixed.Words) != 2 {
		return nil, fmt.Errorf("spoonerism equations require a two-word left side")
	}
	rightFixed, ok := eq.Right.(*FixedLengthExpression)
	if !ok || len(rightFixed.Words) != 2 {
		return nil, fmt.Errorf("spoonerism equations require a two-word right side")
	}

	leftCost := estimateCost(ctx.Terms, eq.Left)
	if leftCost > maxEquationCost {
		return nil, &ErrTooDifficult{Estimate: leftCost}
	}

	genIter := eq.Left.Solve(ctx.Terms)
	advance := func() (EquationSolution, bool) {
		for {
			tuple, ok := genIter.Next()
			if !ok {
				return EquationSolution{}, false
			}
			swapped, ok := swapFirstLetters(tuple[0].Text, tuple[1].Text)
			if !ok {
				continue
			}
			h0, ok0 := ctx.Terms.TryFind(swapped[0])
			h1, ok1 := ctx.Terms.TryFind(swapped[1])
			if !ok0 || !ok1 {
				continue
			}
			right := []Homograph{h0, h1}
			if !eq.Right.Allow(right) {
				continue
			}
			if isTrivialPairing(tuple, right) {
				continue
			}
			return EquationSolution{Left: Solution{Homographs: tuple}, Right: Solution{Homographs: right}}, true
		}
	}
	return &EquationIterator{next: advance}, nil
}

// swapFirstLetters exchanges the first character of a and b, keeping
// the rest of each word intact. Both inputs must be non-empty.
func swapFirstLetters(a, b string) ([2]string, bool) {
	if len(a) == 0 || len(b) == 0 {
		return [2]string{}, false
	}
	swappedA := string(b[0]) + a[1:]
	swappedB := string(a[0]) + b[1:]
	return [2]string{swappedA, swappedB}, true
}
