package puzzle

import (
	"fmt"
	"sync"
)

// WordContext bundles the two read-only indexes every solve needs: the
// flat term dictionary and its anagram-keyed index. Construction is
// the expensive step (mmap + scan + sort); once built, a WordContext
// is immutable and safe for concurrent reads, matching the teacher's
// stance on MorphAnalyzer.
type WordContext struct {
	Terms         *TermDict
	Anagrams      *AnagramDict
	SkippedWords  int // homographs too long to key, see BuildAnagramDict
}

// LoadWordContext loads the dictionary at path and builds both indexes.
func LoadWordContext(path string) (*WordContext, error) {
	terms, err := LoadTermDict(path)
	if err != nil {
		return nil, fmt.Errorf("load word context: %w", err)
	}
	anagrams, skipped := BuildAnagramDict(terms.Homographs)
	return &WordContext{Terms: terms, Anagrams: anagrams, SkippedWords: skipped}, nil
}

// TryGet looks up a Homograph by text (case-insensitive, via
// TermDict.TryFind), mirroring word_context.rs's try_get. Package lang
// does not call it: bareword literals stay text-only WordQueryLiteral
// values and are matched against the dictionary at solve time.
func (c *WordContext) TryGet(text string) (Homograph, bool) {
	return c.Terms.TryFind(text)
}

var (
	globalOnce sync.Once
	global     *WordContext
	globalErr  error
)

// GetContext lazily loads and caches a single process-wide WordContext,
// the way the teacher exposes LoadMorphAnalyzer(): the first caller
// pays the load cost, every later caller (regardless of the path
// argument) gets the same cached instance. Callers that need multiple
// independent contexts in the same process (e.g. tests) should call
// LoadWordContext directly instead.
func GetContext(path string) (*WordContext, error) {
	globalOnce.Do(func() {
		global, globalErr = LoadWordContext(path)
	})
	return global, globalErr
}
