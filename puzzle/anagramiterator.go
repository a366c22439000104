package puzzle

// anagramFrame is one level of the backtracking stack: currentKey is
// the key chosen at this depth (Empty before any is chosen), previous
// is the key chosen at the prior depth (only meaningful when
// hasPrevious is set; the root frame has none), and used accumulates the keys
// chosen so far including currentKey, so a completed frame at the
// target depth can be read off directly as a candidate combination.
type anagramFrame struct {
	currentKey  AnagramKey
	previous    AnagramKey
	hasPrevious bool
	used        []AnagramKey
}

// AnagramIterator lazily enumerates every combination of up to
// maxWords dictionary keys (repeats allowed) whose sum equals target,
// walking the dictionary's distinct keys in descending order at each
// depth and only ever considering keys at or below the one picked at
// the previous depth. This is the one place duplicate permutations
// are avoided for free: since each depth's candidate is bounded above
// by the previous depth's pick, "cat act" and "act cat" are the same
// walk and only produced once.
//
// Ported from the second AnagramIterator in the original's
// anagram_dict.rs (the previous/current_key/used stack, not the
// Bound-based BTreeMap-range version in anagram_iterator.rs): that is
// the version whose "check previous squared" comment spec.md's open
// question about repeated words refers to.
type AnagramIterator struct {
	dict     *AnagramDict
	target   AnagramKey
	settings AnagramSettings
	stack    []anagramFrame
}

// NewAnagramIterator starts an enumeration over dict for the given
// target key, bounded by settings.
func NewAnagramIterator(dict *AnagramDict, target AnagramKey, settings AnagramSettings) *AnagramIterator {
	it := &AnagramIterator{dict: dict, target: target, settings: settings}
	it.stack = append(it.stack, anagramFrame{currentKey: Empty, hasPrevious: false, used: nil})
	return it
}

// Next returns the next combination of keys (as []AnagramKey, one per
// word, possibly fewer than MaxWords if an earlier depth already
// reached the target) summing exactly to the target, or (nil, false)
// once the search space is exhausted.
func (it *AnagramIterator) Next() ([]AnagramKey, bool) {
	for len(it.stack) > 0 {
		top := len(it.stack) - 1
		frame := &it.stack[top]

		upperKind := boundIncluded
		if !frame.hasPrevious {
			upperKind = boundUnbounded
		}
		candidates := it.dict.rangeDescending(boundUnbounded, AnagramKey{}, upperKind, frame.previous)
		advanced := false
		for _, candidate := range candidates {
			if candidate.Compare(frame.currentKey) >= 0 && !frame.currentKey.IsEmpty() {
				// Already tried this key or larger at this depth; keep
				// descending past it.
				continue
			}
			if !it.settings.AllowKey(candidate) {
				continue
			}
			used := sumKeys(frame.used, candidate)
			combined, ok := sumAll(used)
			if !ok {
				continue
			}
			cmp := combined.Compare(it.target)
			if cmp == 0 {
				frame.currentKey = candidate
				result := append([]AnagramKey(nil), used...)
				advanced = true
				it.pushOrRetry(frame, candidate)
				return result, true
			}
			if cmp > 0 {
				continue
			}
			// combined < target: worth descending into, if we haven't
			// hit MaxWords and there's still a key small enough left.
			frame.currentKey = candidate
			if len(used) < it.settings.MaxWords {
				// The child frame's upper bound is always inclusive of
				// candidate, so repetition ("cat cat") stays legal.
				// This is exactly the "check previous squared" case:
				// two equal words are allowed, three or more are
				// reached by recursing with the same inclusive bound
				// again.
				child := anagramFrame{currentKey: Empty, previous: candidate, hasPrevious: true, used: used}
				it.stack = append(it.stack, child)
			}
			advanced = true
			break
		}
		if advanced {
			continue
		}
		// Exhausted this depth: pop back up.
		it.stack = it.stack[:top]
	}
	return nil, false
}

// pushOrRetry leaves the current frame positioned so the next call to
// Next resumes the descending scan just past the key it just returned
// (rather than re-emitting it), by recording it as the frame's
// currentKey: Next skips every candidate at or above currentKey.
func (it *AnagramIterator) pushOrRetry(frame *anagramFrame, justReturned AnagramKey) {
	frame.currentKey = justReturned
}

func sumKeys(used []AnagramKey, extra AnagramKey) []AnagramKey {
	out := make([]AnagramKey, 0, len(used)+1)
	out = append(out, used...)
	out = append(out, extra)
	return out
}

func sumAll(keys []AnagramKey) (AnagramKey, bool) {
	sum := Empty
	for _, k := range keys {
		next, ok := sum.Add(k)
		if !ok {
			return AnagramKey{}, false
		}
		sum = next
	}
	return sum, true
}
