package puzzle

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// TermDict is the flat list of every Homograph loaded from the
// dictionary TSV, plus a by-part-of-speech index. It is built once
// and never mutated afterward — matches the teacher's MorphAnalyzer,
// which is immutable after LoadMorphAnalyzer returns.
type TermDict struct {
	Homographs            []Homograph
	homographsByPos        map[PartOfSpeech][]Homograph
	indexByText            map[string]int // lowercased text -> index into Homographs
}

// LoadTermDict mmaps the TSV at path (columns: pos, text, definition,
// tags — tags comma-separated, definition may be empty) and builds a
// TermDict from it. The mapping is unmapped before this function
// returns: scanning happens entirely within the call, so the dict
// itself never holds a reference to mapped memory once loaded. This
// is a zero-copy *read* of the input file, not a persisted index.
func LoadTermDict(path string) (*TermDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %q: %w", path, err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dictionary %q: %w", path, err)
	}
	defer m.Unmap()

	return buildTermDictFromTSV(bytes.NewReader(m))
}

func buildTermDictFromTSV(r *bytes.Reader) (*TermDict, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	// Preserve first-seen order, then group by exact text so repeated
	// spellings collapse into one Homograph with multiple Meanings —
	// mirrors from_term_data's enumerate+sort_by_key+group_by.
	order := make([]string, 0, 4096)
	byText := make(map[string][]Meaning)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		cols := strings.SplitN(line, "\t", 4)
		if len(cols) < 2 {
			return nil, fmt.Errorf("dictionary line %d: expected at least 2 tab-separated columns, got %d", lineNo, len(cols))
		}
		pos, err := ParsePartOfSpeech(cols[0])
		if err != nil {
			return nil, fmt.Errorf("dictionary line %d: %w", lineNo, err)
		}
		text := cols[1]
		var definition string
		if len(cols) > 2 {
			definition = cols[2]
		}
		var tags WordTag
		if len(cols) > 3 && cols[3] != "" {
			for _, t := range strings.Split(cols[3], ",") {
				tag, err := ParseWordTag(t)
				if err != nil {
					return nil, fmt.Errorf("dictionary line %d: %w", lineNo, err)
				}
				tags |= tag
			}
		}
		if _, seen := byText[text]; !seen {
			order = append(order, text)
		}
		byText[text] = append(byText[text], Meaning{PartOfSpeech: pos, Tags: tags, Definition: definition})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan dictionary: %w", err)
	}

	homographs := make([]Homograph, 0, len(order))
	for _, text := range order {
		homographs = append(homographs, Homograph{
			Text:         text,
			IsSingleWord: !strings.ContainsAny(text, " -"),
			Meanings:     byText[text],
		})
	}
	sort.SliceStable(homographs, func(i, j int) bool { return homographs[i].Less(homographs[j]) })

	td := &TermDict{
		Homographs:     homographs,
		homographsByPos: make(map[PartOfSpeech][]Homograph),
		indexByText:    make(map[string]int, len(homographs)),
	}
	for i, h := range homographs {
		td.indexByText[strings.ToLower(h.Text)] = i
		for _, m := range h.Meanings {
			td.homographsByPos[m.PartOfSpeech] = append(td.homographsByPos[m.PartOfSpeech], h)
		}
	}
	return td, nil
}

// ByPartOfSpeech returns every Homograph carrying at least one Meaning
// with the given part of speech. The slice is shared, read-only.
func (d *TermDict) ByPartOfSpeech(pos PartOfSpeech) []Homograph {
	return d.homographsByPos[pos]
}

// TryFind looks up a Homograph by exact (case-insensitive) text.
// Supplements the original Rust: used by the spoonerism solver to
// resolve a swapped-prefix candidate back to its dictionary entry.
func (d *TermDict) TryFind(text string) (Homograph, bool) {
	i, ok := d.indexByText[strings.ToLower(text)]
	if !ok {
		return Homograph{}, false
	}
	return d.Homographs[i], true
}
