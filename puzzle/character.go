// Package puzzle implements the solver core: the anagram-key multiset
// arithmetic, the term and anagram dictionaries, the predicate and
// expression evaluator, the backtracking anagram enumerator, and the
// equation planner. It has no knowledge of the query DSL's surface
// syntax — that lives in package lang.
package puzzle

import "fmt"

// Character is one of the 26 ASCII letters, ordered by English letter
// frequency rather than alphabet position. Frequency order matters:
// Character is used as an index into primesByFrequency below, so the
// most common letters are assigned the smallest primes, which bounds
// the growth of an AnagramKey's product for ordinary English words.
type Character uint8

// Frequency-ordered character constants. Character(0) is the most
// common English letter.
const (
	CharE Character = iota
	CharT
	CharA
	CharI
	CharN
	CharO
	CharS
	CharH
	CharR
	CharD
	CharL
	CharU
	CharC
	CharM
	CharF
	CharW
	CharY
	CharG
	CharP
	CharB
	CharV
	CharK
	CharQ
	CharJ
	CharX
	CharZ
	characterCount
)

// primesByFrequency[i] is the prime assigned to the i-th most frequent
// letter. Kept small (fits a byte) since the largest is 101.
var primesByFrequency = [characterCount]uint8{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97, 101,
}

// lettersByFrequency maps a Character to its ASCII lowercase rune.
var lettersByFrequency = [characterCount]byte{
	'e', 't', 'a', 'i', 'n', 'o', 's', 'h', 'r', 'd',
	'l', 'u', 'c', 'm', 'f', 'w', 'y', 'g', 'p', 'b',
	'v', 'k', 'q', 'j', 'x', 'z',
}

// primeByLetter[c-'a'] is the prime assigned to ASCII lowercase letter c.
var primeByLetter = buildPrimeByLetter()

// ascendingPrimes lists the primes in ascending order, and
// letterByAscendingPrime[i] is the ASCII lowercase letter assigned
// ascendingPrimes[i]; together they map a prime back to its letter for
// AnagramKey's
// Display/String method to recover letters from a product.
var ascendingPrimes, letterByAscendingPrime = buildAscendingPrimeTables()

func buildPrimeByLetter() [26]uint8 {
	var table [26]uint8
	for i, c := range lettersByFrequency {
		table[c-'a'] = primesByFrequency[i]
	}
	return table
}

func buildAscendingPrimeTables() ([26]uint8, [26]byte) {
	var primes [26]uint8
	var letters [26]byte
	for i, c := range lettersByFrequency {
		primes[i] = primesByFrequency[i]
		letters[i] = c
		_ = c
	}
	// Sort (primes, letters) pairs by prime ascending; 26 elements,
	// insertion sort is plenty and keeps this readable.
	for i := 1; i < len(primes); i++ {
		for j := i; j > 0 && primes[j-1] > primes[j]; j-- {
			primes[j-1], primes[j] = primes[j], primes[j-1]
			letters[j-1], letters[j] = letters[j], letters[j-1]
		}
	}
	return primes, letters
}

// AsByte returns the uppercase ASCII byte for c.
func (c Character) AsByte() byte {
	return lettersByFrequency[c] - 'a' + 'A'
}

func (c Character) String() string {
	return string(c.AsByte())
}

// CharacterFromRune converts an ASCII letter (either case) to a
// Character. It returns false for anything else.
func CharacterFromRune(r rune) (Character, bool) {
	var lower byte
	switch {
	case r >= 'a' && r <= 'z':
		lower = byte(r)
	case r >= 'A' && r <= 'Z':
		lower = byte(r) - 'A' + 'a'
	default:
		return 0, false
	}
	prime := primeByLetter[lower-'a']
	for i, p := range primesByFrequency {
		if p == prime {
			return Character(i), true
		}
	}
	panic(fmt.Sprintf("unreachable: no frequency slot for letter %q", lower))
}

// CharacterMap is a dense array keyed by Character, mirroring the
// teacher's preference for flat indexed arrays over maps on the hot path.
type CharacterMap[T any] [characterCount]T

func (m *CharacterMap[T]) Get(c Character) T    { return m[c] }
func (m *CharacterMap[T]) Set(c Character, v T)  { m[c] = v }
func (m *CharacterMap[T]) GetPtr(c Character) *T { return &m[c] }
