package puzzle

import "testing"

func buildSmallAnagramDict(t *testing.T) *AnagramDict {
	t.Helper()
	words := []string{"cat", "act", "dog", "god", "tac", "do", "cats", "cast", "acts"}
	homographs := make([]Homograph, len(words))
	for i, w := range words {
		homographs[i] = Homograph{Text: w, IsSingleWord: true}
	}
	dict, _ := BuildAnagramDict(homographs)
	return dict
}

func TestAnagramIteratorFindsSingleWordCombinations(t *testing.T) {
	dict := buildSmallAnagramDict(t)
	target, _ := ParseAnagramKey("cat")
	it := NewAnagramIterator(dict, target, AnagramSettings{MinWordLength: 3, MaxWords: 3})

	found := false
	for {
		keys, ok := it.Next()
		if !ok {
			break
		}
		sum, ok := sumAll(keys)
		if !ok || sum != target {
			t.Fatalf("combination %v does not sum to target", keys)
		}
		if len(keys) == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected at least one single-key combination for 'cat'")
	}
}

func TestAnagramIteratorRespectsMinWordLength(t *testing.T) {
	dict := buildSmallAnagramDict(t)
	// "cats" == "cast" == "acts" letters; also equals "cat" + "s", but
	// "s" alone is shorter than the minimum, so no 2-word combination
	// using a lone "s" should ever appear (there is no "s" in the dict
	// anyway, this also checks MinWordLength excludes any key < 3).
	target, _ := ParseAnagramKey("cats")
	it := NewAnagramIterator(dict, target, AnagramSettings{MinWordLength: 3, MaxWords: 3})
	for {
		keys, ok := it.Next()
		if !ok {
			break
		}
		for _, k := range keys {
			if k.Len < 3 {
				t.Fatalf("combination %v contains a key shorter than the minimum", keys)
			}
		}
	}
}

func TestAnagramIteratorRespectsMaxWords(t *testing.T) {
	dict := buildSmallAnagramDict(t)
	target, _ := ParseAnagramKey("cats")
	it := NewAnagramIterator(dict, target, AnagramSettings{MinWordLength: 3, MaxWords: 1})
	for {
		keys, ok := it.Next()
		if !ok {
			break
		}
		if len(keys) > 1 {
			t.Fatalf("MaxWords=1 should never yield a multi-key combination, got %v", keys)
		}
	}
}

func TestAnagramIteratorExhaustsCleanly(t *testing.T) {
	dict := buildSmallAnagramDict(t)
	target, _ := ParseAnagramKey("xyz")
	it := NewAnagramIterator(dict, target, DefaultAnagramSettings)
	if _, ok := it.Next(); ok {
		t.Fatalf("no dictionary key sums to an untouched letter multiset")
	}
	// Calling Next again past exhaustion must not panic and must keep
	// reporting false.
	if _, ok := it.Next(); ok {
		t.Fatalf("iterator should stay exhausted")
	}
}

func TestAnagramIteratorDeterministic(t *testing.T) {
	dict := buildSmallAnagramDict(t)
	target, _ := ParseAnagramKey("cats")

	collect := func() [][]AnagramKey {
		it := NewAnagramIterator(dict, target, AnagramSettings{MinWordLength: 3, MaxWords: 3})
		var all [][]AnagramKey
		for {
			keys, ok := it.Next()
			if !ok {
				break
			}
			all = append(all, keys)
		}
		return all
	}

	first := collect()
	second := collect()
	if len(first) != len(second) {
		t.Fatalf("two runs produced different result counts: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i]) != len(second[i]) {
			t.Fatalf("result %d differs in shape between runs", i)
		}
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Fatalf("result %d differs in content between runs", i)
			}
		}
	}
}
