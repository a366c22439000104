package puzzle

import (
	"fmt"
	"math/bits"
	"strings"
)

// AnagramKey is a canonical, order-independent encoding of a letter
// multiset: Len is the letter count, and Inner is the product of each
// letter's frequency-ranked prime (see character.go), held as a
// 128-bit value split into Hi/Lo uint64 halves since Go has no native
// u128. Two keys are equal iff they encode the same multiset of
// letters, regardless of the original word's casing or order.
type AnagramKey struct {
	Len      uint8
	Hi, Lo   uint64
}

// Empty is the key of the empty letter multiset: Inner == 1, Len == 0.
var Empty = AnagramKey{}

func init() {
	Empty.Lo = 1
}

// IsEmpty reports whether k holds no letters.
func (k AnagramKey) IsEmpty() bool {
	return k.Hi == 0 && k.Lo == 1
}

// Compare gives a total order on AnagramKey consistent across a single
// run (used by the enumerator for deterministic descending iteration).
// It compares the 128-bit product only; Len takes no part, since the
// product alone already determines the multiset.
func (k AnagramKey) Compare(other AnagramKey) int {
	if k.Hi != other.Hi {
		if k.Hi < other.Hi {
			return -1
		}
		return 1
	}
	if k.Lo != other.Lo {
		if k.Lo < other.Lo {
			return -1
		}
		return 1
	}
	return 0
}

func (k AnagramKey) Less(other AnagramKey) bool { return k.Compare(other) < 0 }
func (k AnagramKey) LessOrEqual(other AnagramKey) bool { return k.Compare(other) <= 0 }

// mul128 multiplies two 128-bit values (hi,lo) pairs, returning the
// low 128 bits of the product and whether the true product overflowed
// 128 bits (i.e. the high word of a full 256-bit product is nonzero).
func mul128(aHi, aLo, bHi, bLo uint64) (hi, lo uint64, overflow bool) {
	// lo*lo -> 128 bits
	hi1, lo1 := bits.Mul64(aLo, bLo)
	// aHi*bHi alone lands at bit 128 or above, regardless of the cross
	// terms below; everything else that can push the product past 128
	// bits is caught by crossHi/crossHi2 (the cross products' own high
	// words) and by carry1/carry2 (the cross products' low words
	// carrying out of the result's high word).
	if aHi != 0 && bHi != 0 {
		overflow = true
	}
	crossHi, crossLo := bits.Mul64(aHi, bLo)
	if crossHi != 0 {
		overflow = true
	}
	sum1, carry1 := bits.Add64(hi1, crossLo, 0)
	if carry1 != 0 {
		overflow = true
	}
	crossHi2, crossLo2 := bits.Mul64(bHi, aLo)
	if crossHi2 != 0 {
		overflow = true
	}
	sum2, carry2 := bits.Add64(sum1, crossLo2, 0)
	if carry2 != 0 {
		overflow = true
	}
	return sum2, lo1, overflow
}

// Add returns the union of k and other's letter multisets: the
// product of their Inner values and the sum of their lengths. It
// returns false if the combined word would be too long to encode
// (the 128-bit product overflows) — this is the "word too long"
// condition that ParseAnagramKey reports as ErrKeyOverflow.
func (k AnagramKey) Add(other AnagramKey) (AnagramKey, bool) {
	hi, lo, overflow := mul128(k.Hi, k.Lo, other.Hi, other.Lo)
	if overflow {
		return AnagramKey{}, false
	}
	lenSum := int(k.Len) + int(other.Len)
	if lenSum > 255 {
		return AnagramKey{}, false
	}
	return AnagramKey{Len: uint8(lenSum), Hi: hi, Lo: lo}, true
}

// Sub returns k's letter multiset with other's removed, succeeding
// only when other's multiset is contained in k's: k.Inner must be
// divisible by other.Inner (with no remainder) and k.Len must be at
// least other.Len.
func (k AnagramKey) Sub(other AnagramKey) (AnagramKey, bool) {
	if other.Hi == 0 && other.Lo == 0 {
		return AnagramKey{}, false
	}
	if k.Len < other.Len {
		return AnagramKey{}, false
	}
	hi, lo, rem, ok := div128(k.Hi, k.Lo, other.Hi, other.Lo)
	if !ok || rem != 0 {
		return AnagramKey{}, false
	}
	return AnagramKey{Len: k.Len - other.Len, Hi: hi, Lo: lo}, true
}

// div128 divides the 128-bit value (hi,lo) by divisor (dHi,dLo),
// returning quotient (qHi,qLo), remainder (as a 128-bit value reduced
// to a single uint64 — callers only ever test it against zero, which
// is enough to know whether the division was exact), and whether the
// divisor's magnitude made the computation valid (divisor nonzero and
// representable within 64 bits, which always holds for AnagramKey
// divisors in practice since they are products of primes <= 101 for
// dictionary words capped well under 2^64).
func div128(hi, lo, dHi, dLo uint64) (qHi, qLo uint64, rem uint64, ok bool) {
	if dHi != 0 {
		// Divisor itself exceeds 64 bits: only exact equality can work,
		// and AnagramKey divisors in this domain never reach that size,
		// so treat it as "not divisible" rather than attempting a full
		// 128-by-128 division.
		if hi == dHi && lo == dLo {
			return 0, 1, 0, true
		}
		return 0, 0, 1, true
	}
	if dLo == 0 {
		return 0, 0, 0, false
	}
	if hi == 0 {
		q, r := bits.Div64(0, lo, dLo)
		return 0, q, r, true
	}
	// hi != 0, dHi == 0: divide the high word first, then combine the
	// remainder with the low word (standard long division by a 64-bit
	// divisor).
	if hi >= dLo {
		// Quotient would need more than 64 bits for the high word --
		// cannot happen for AnagramKey (products of dictionary-word
		// primes stay well under 2^128 / 101), but guard anyway.
		qh, rh := bits.Div64(0, hi, dLo)
		ql, r := bits.Div64(rh, lo, dLo)
		return qh, ql, r, true
	}
	ql, r := bits.Div64(hi, lo, dLo)
	return 0, ql, r, true
}

// String renders an AnagramKey back into a representative lowercase
// string containing exactly the encoded letters, in frequency order
// (not the original word order -- AnagramKey discards order). The
// empty key renders as "!".
func (k AnagramKey) String() string {
	if k.IsEmpty() {
		return "!"
	}
	var b strings.Builder
	hi, lo := k.Hi, k.Lo
	for i, p := range ascendingPrimes {
		for {
			qHi, qLo, rem, ok := div128(hi, lo, 0, uint64(p))
			if !ok || rem != 0 {
				break
			}
			b.WriteByte(letterByAscendingPrime[i])
			hi, lo = qHi, qLo
			if hi == 0 && lo == 1 {
				return b.String()
			}
		}
	}
	return b.String()
}

// ErrKeyOverflow is returned by ParseAnagramKey when a word's letters
// cannot be encoded as a 128-bit product -- i.e. the word is too long.
// Real English words never trigger this with frequency-ranked primes;
// it exists as a defensive bound on pathological input.
type ErrKeyOverflow struct {
	Word string
}

func (e *ErrKeyOverflow) Error() string {
	return fmt.Sprintf("word %q is too long to encode as an anagram key", e.Word)
}

// ParseAnagramKey builds the AnagramKey for a word's letters,
// ignoring any non-ASCII-letter runes (spaces, punctuation).
func ParseAnagramKey(word string) (AnagramKey, error) {
	key := Empty
	for _, r := range word {
		c, ok := CharacterFromRune(r)
		if !ok {
			continue
		}
		letterKey := AnagramKey{Len: 1, Lo: uint64(primesByFrequency[c])}
		next, ok := key.Add(letterKey)
		if !ok {
			return AnagramKey{}, &ErrKeyOverflow{Word: word}
		}
		key = next
	}
	return key, nil
}
