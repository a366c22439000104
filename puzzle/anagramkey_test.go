package puzzle

import "testing"

func TestParseAnagramKeyEqualityIgnoresCaseAndOrder(t *testing.T) {
	a, err := ParseAnagramKey("cat")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseAnagramKey("ACT")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("cat and ACT should share an AnagramKey: %+v != %+v", a, b)
	}
}

func TestParseAnagramKeyDistinguishesDifferentMultisets(t *testing.T) {
	a, _ := ParseAnagramKey("cat")
	b, _ := ParseAnagramKey("dog")
	if a == b {
		t.Fatalf("cat and dog must not share an AnagramKey")
	}
}

func TestAnagramKeyEmpty(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Fatalf("Empty.IsEmpty() should be true")
	}
	k, err := ParseAnagramKey("")
	if err != nil {
		t.Fatal(err)
	}
	if !k.IsEmpty() {
		t.Fatalf("ParseAnagramKey(\"\") should be Empty")
	}
}

func TestAnagramKeyAddSubRoundTrip(t *testing.T) {
	a, _ := ParseAnagramKey("cat")
	b, _ := ParseAnagramKey("dog")
	sum, ok := a.Add(b)
	if !ok {
		t.Fatalf("Add should succeed for small words")
	}
	back, ok := sum.Sub(b)
	if !ok {
		t.Fatalf("Sub should succeed when rhs's multiset is contained")
	}
	if back != a {
		t.Fatalf("(a + b) - b should equal a: got %+v, want %+v", back, a)
	}
}

func TestAnagramKeySubFailsWhenNotContained(t *testing.T) {
	a, _ := ParseAnagramKey("cat")
	b, _ := ParseAnagramKey("dog")
	if _, ok := a.Sub(b); ok {
		t.Fatalf("Sub should fail: dog's letters are not a subset of cat's")
	}
}

func TestAnagramKeyCompareTotalOrder(t *testing.T) {
	a, _ := ParseAnagramKey("cat")
	b, _ := ParseAnagramKey("dog")
	if a.Compare(b) == 0 {
		t.Fatalf("distinct keys must compare non-equal")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("a key must compare equal to itself")
	}
}

func TestAnagramKeyStringRecoversLetters(t *testing.T) {
	k, _ := ParseAnagramKey("cat")
	s := k.String()
	if len(s) != 3 {
		t.Fatalf("String() should recover exactly 3 letters, got %q", s)
	}
	// the recovered letters, sorted, should match {a,c,t}
	counts := map[byte]int{}
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	for _, want := range []byte{'a', 'c', 't'} {
		if counts[want] != 1 {
			t.Fatalf("String() = %q missing letter %q", s, want)
		}
	}
}

func TestAnagramKeyIgnoresNonLetters(t *testing.T) {
	a, _ := ParseAnagramKey("cat")
	b, _ := ParseAnagramKey("c a t!")
	if a != b {
		t.Fatalf("non-letter runes should be ignored when building a key")
	}
}

// TestMul128DoesNotFalselyOverflowAcrossHiBoundary exercises a product
// whose Hi half is nonzero (the a value alone is already >= 2^64) but
// whose true 128-bit product is nowhere near overflowing. A naive
// "any nonzero cross term means overflow" check flags this spuriously.
func TestMul128DoesNotFalselyOverflowAcrossHiBoundary(t *testing.T) {
	// a = 1<<64, b = 5 -> a*b = 5<<64, representable as hi=5, lo=0.
	hi, lo, overflow := mul128(1, 0, 0, 5)
	if overflow {
		t.Fatalf("mul128(1<<64, 5) should not overflow 128 bits")
	}
	if hi != 5 || lo != 0 {
		t.Fatalf("mul128(1<<64, 5) = (hi=%d, lo=%d), want (hi=5, lo=0)", hi, lo)
	}
}

// TestMul128OverflowsWhenTrueProductExceeds128Bits exercises a genuine
// overflow: both operands' Hi halves are nonzero, so the product has a
// nonzero bit at position 128 or above.
func TestMul128OverflowsWhenTrueProductExceeds128Bits(t *testing.T) {
	_, _, overflow := mul128(1, 0, 1, 0)
	if !overflow {
		t.Fatalf("mul128(1<<64, 1<<64) = 1<<128 should overflow 128 bits")
	}
}

// TestParseAnagramKeyHandlesKeysCrossingTheHiBoundary reproduces a
// previously mis-flagged case: a phrase long enough that its running
// product's Hi half goes nonzero partway through, after which every
// further single-letter Add used to be rejected as a spurious
// overflow even though the true product stayed well under 2^128.
func TestParseAnagramKeyHandlesKeysCrossingTheHiBoundary(t *testing.T) {
	word := "clinteastwoodclinteastwood"
	key, err := ParseAnagramKey(word)
	if err != nil {
		t.Fatalf("ParseAnagramKey(%q) should not report overflow: %v", word, err)
	}
	if key.Hi == 0 {
		t.Fatalf("expected this word's key to cross the Hi != 0 boundary, got %+v", key)
	}
	if int(key.Len) != len(word) {
		t.Fatalf("key.Len = %d, want %d", key.Len, len(word))
	}
	if s := key.String(); len(s) != len(word) {
		t.Fatalf("String() recovered %d letters, want %d: %q", len(s), len(word), s)
	}
}
