package puzzle

import "testing"

func TestBuildAnagramDictGroupsHomographsByKey(t *testing.T) {
	cat := Homograph{Text: "cat", IsSingleWord: true}
	act := Homograph{Text: "act", IsSingleWord: true}
	dog := Homograph{Text: "dog", IsSingleWord: true}

	dict, skipped := BuildAnagramDict([]Homograph{cat, act, dog})
	if skipped != 0 {
		t.Fatalf("expected no skipped homographs, got %d", skipped)
	}

	catKey, _ := ParseAnagramKey("cat")
	group, ok := dict.Get(catKey)
	if !ok {
		t.Fatalf("expected to find the cat/act key")
	}
	if len(group) != 2 {
		t.Fatalf("expected cat and act to share one key's group, got %d entries", len(group))
	}

	dogKey, _ := ParseAnagramKey("dog")
	if !dict.ContainsKey(catKey) || !dict.ContainsKey(dogKey) {
		t.Fatalf("expected both keys to be indexed")
	}
}

func TestAnagramDictKeysSortedAscending(t *testing.T) {
	dict, _ := BuildAnagramDict([]Homograph{
		{Text: "cat"}, {Text: "dog"}, {Text: "owl"}, {Text: "bed"},
	})
	for i := 1; i < len(dict.keys); i++ {
		if !dict.keys[i-1].Less(dict.keys[i]) {
			t.Fatalf("keys not strictly ascending at index %d", i)
		}
	}
}

func TestAnagramDictRangeDescending(t *testing.T) {
	dict, _ := BuildAnagramDict([]Homograph{
		{Text: "cat"}, {Text: "dog"}, {Text: "owl"}, {Text: "bed"},
	})
	all := dict.rangeDescending(boundUnbounded, AnagramKey{}, boundUnbounded, AnagramKey{})
	if len(all) != len(dict.keys) {
		t.Fatalf("unbounded range should return every key, got %d of %d", len(all), len(dict.keys))
	}
	for i := 1; i < len(all); i++ {
		if !all[i].Less(all[i-1]) {
			t.Fatalf("rangeDescending should walk keys in descending order")
		}
	}
}
