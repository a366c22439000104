package puzzle

import "sort"

// AnagramDict indexes every Homograph in a TermDict by its
// AnagramKey, so the anagram enumerator (anagramiterator.go) can walk
// the index key by key without scanning the whole dictionary. Keys
// are held sorted in parallel slices (keys[i] maps to groups[i]),
// mirroring the original's BinaryMap<AnagramKey, Homograph, SIZE> —
// a flat sorted-array structure instead of a tree, since the whole
// dictionary is built once and never mutated.
type AnagramDict struct {
	keys   []AnagramKey
	groups [][]Homograph
}

// BuildAnagramDict indexes every Homograph in homographs by its
// letters, skipping any entry (single- or multi-word) that is longer
// than an AnagramKey can encode (reported, not fatal — callers can inspect
// the returned skipped count and log it at debug level per spec.md §7).
func BuildAnagramDict(homographs []Homograph) (*AnagramDict, int) {
	byKey := make(map[AnagramKey][]Homograph)
	skipped := 0
	for _, h := range homographs {
		key, err := h.Key()
		if err != nil {
			skipped++
			continue
		}
		byKey[key] = append(byKey[key], h)
	}
	keys := make([]AnagramKey, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	groups := make([][]Homograph, len(keys))
	for i, k := range keys {
		groups[i] = byKey[k]
	}
	return &AnagramDict{keys: keys, groups: groups}, skipped
}

// Get returns the homographs exactly matching key, if any are indexed.
func (d *AnagramDict) Get(key AnagramKey) ([]Homograph, bool) {
	i := sort.Search(len(d.keys), func(i int) bool { return !d.keys[i].Less(key) })
	if i < len(d.keys) && d.keys[i] == key {
		return d.groups[i], true
	}
	return nil, false
}

// ContainsKey reports whether key has at least one indexed homograph.
func (d *AnagramDict) ContainsKey(key AnagramKey) bool {
	_, ok := d.Get(key)
	return ok
}

// boundKind distinguishes inclusive and exclusive range endpoints,
// mirroring the original's std::ops::Bound used by both BinaryMap's
// range method and (by name only, not structure — see anagramiterator.go)
// the first AnagramIterator implementation.
type boundKind int

const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// rangeDescending returns the keys of d.keys lying within
// (lowerBound, lowerKind] .. (upperBound, upperKind), copied out in
// descending order, the order the enumerator walks them in. lowerKind/upperKind of
// boundUnbounded ignore the corresponding bound value.
func (d *AnagramDict) rangeDescending(lowerKind boundKind, lower AnagramKey, upperKind boundKind, upper AnagramKey) []AnagramKey {
	lo := 0
	if lowerKind != boundUnbounded {
		lo = sort.Search(len(d.keys), func(i int) bool { return !d.keys[i].Less(lower) })
		if lowerKind == boundExcluded && lo < len(d.keys) && d.keys[lo] == lower {
			lo++
		}
	}
	hi := len(d.keys)
	if upperKind != boundUnbounded {
		hi = sort.Search(len(d.keys), func(i int) bool { return upper.Less(d.keys[i]) })
		if upperKind == boundExcluded {
			hi = sort.Search(len(d.keys), func(i int) bool { return !d.keys[i].Less(upper) })
		}
	}
	if lo >= hi {
		return nil
	}
	out := make([]AnagramKey, hi-lo)
	for i := range out {
		out[i] = d.keys[hi-1-i]
	}
	return out
}
