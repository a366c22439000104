// Command lexgen builds the bundled dictionary TSV from a WordNet-LMF
// XML dump, plus bundled first-/last-name word lists, reproducing
// dict-generator/main.rs's output shape: one row per (pos, text,
// definition) triple, tab-separated, no header.
package main

import (
	"bufio"
	"encoding/xml"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/fenwicklabs/lexigram/internal/logging"
)

// lexicalResource mirrors the WordNet-LMF XML shape quick-xml+serde
// deserialize in dict-generator/main.rs, using encoding/xml struct
// tags in place of serde's #[serde(rename = ...)].
type lexicalResource struct {
	XMLName xml.Name `xml:"LexicalResource"`
	Lexicon lexicon  `xml:"Lexicon"`
}

type lexicon struct {
	LexicalEntries []lexicalEntry `xml:"LexicalEntry"`
	Synsets        []synset       `xml:"Synset"`
}

type lexicalEntry struct {
	Lemma  lemma   `xml:"Lemma"`
	Senses []sense `xml:"Sense"`
}

type lemma struct {
	WrittenForm  string `xml:"writtenForm,attr"`
	PartOfSpeech string `xml:"partOfSpeech,attr"`
}

type sense struct {
	Synset string `xml:"synset,attr"`
}

type synset struct {
	ID         string `xml:"id,attr"`
	Definition string `xml:"Definition"`
}

// isDictionaryWord mirrors Lemma::is_dictionary_word: more than two
// characters, all ASCII lowercase letters (no proper nouns, no
// multi-word collocations; names enter only through the name-list
// merge below).
func isDictionaryWord(writtenForm string) bool {
	if len(writtenForm) <= 2 {
		return false
	}
	for _, r := range writtenForm {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// posCode maps WordNet-LMF's partOfSpeech attribute values to the
// bundled TSV's single-letter codes, collapsing AdjectiveSatellite
// into the same "j" as Adjective -- exactly dict-generator/main.rs's
// match arm.
func posCode(wordnetPOS string) (string, bool) {
	switch wordnetPOS {
	case "n":
		return "n", true
	case "v":
		return "v", true
	case "a":
		return "j", true
	case "s":
		return "j", true // adjective satellite
	case "r":
		return "a", true
	default:
		return "", false
	}
}

func main() {
	var (
		xmlPath       string
		outPath       string
		firstNamePath string
		lastNamePath  string
		nameLimit     int
		verbose       bool
	)
	flag.StringVar(&xmlPath, "xml", "", "path to the WordNet-LMF XML dump (required)")
	flag.StringVar(&outPath, "out", "dictionary.tsv", "path to write the generated TSV")
	flag.StringVar(&firstNamePath, "first-names", "", "path to a whitespace-separated first-name word list")
	flag.StringVar(&lastNamePath, "last-names", "", "path to a whitespace-separated last-name word list")
	flag.IntVar(&nameLimit, "name-limit", 2500, "maximum number of first/last names to include from each list")
	flag.BoolVar(&verbose, "verbose", false, "debug-level logging")
	flag.Parse()

	logger, err := logging.New(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if xmlPath == "" {
		fmt.Fprintln(os.Stderr, "-xml is required")
		os.Exit(1)
	}

	if err := run(xmlPath, outPath, firstNamePath, lastNamePath, nameLimit, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(xmlPath, outPath, firstNamePath, lastNamePath string, nameLimit int, logger *zap.Logger) error {
	f, err := os.Open(xmlPath)
	if err != nil {
		return fmt.Errorf("open %q: %w", xmlPath, err)
	}
	defer f.Close()

	var resource lexicalResource
	if err := xml.NewDecoder(f).Decode(&resource); err != nil {
		return fmt.Errorf("decode WordNet-LMF XML: %w", err)
	}

	definitionBySynset := make(map[string]string, len(resource.Lexicon.Synsets))
	for _, s := range resource.Lexicon.Synsets {
		if s.Definition != "" {
			definitionBySynset[s.ID] = s.Definition
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()

	rowCount := 0
	skipped := 0
	for _, entry := range resource.Lexicon.LexicalEntries {
		if !isDictionaryWord(entry.Lemma.WrittenForm) {
			skipped++
			continue
		}
		code, ok := posCode(entry.Lemma.PartOfSpeech)
		if !ok {
			skipped++
			continue
		}
		definition := ""
		for _, s := range entry.Senses {
			if d, ok := definitionBySynset[s.Synset]; ok {
				definition = d
				break
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", code, entry.Lemma.WrittenForm, definition)
		rowCount++
	}
	logger.Debug("wordnet entries written", zap.Int("rows", rowCount), zap.Int("skipped", skipped))

	if firstNamePath != "" {
		n, err := appendNameList(w, firstNamePath, "f", nameLimit)
		if err != nil {
			return err
		}
		logger.Debug("first names written", zap.Int("rows", n))
	}
	if lastNamePath != "" {
		n, err := appendNameList(w, lastNamePath, "l", nameLimit)
		if err != nil {
			return err
		}
		logger.Debug("last names written", zap.Int("rows", n))
	}
	return nil
}

// appendNameList writes up to limit whitespace-separated names from
// path as rows tagged with pos, mirroring the first-names.txt/
// last-names.txt merge in dict-generator/main.rs.
func appendNameList(w *bufio.Writer, path, pos string, limit int) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read name list %q: %w", path, err)
	}
	names := strings.Fields(string(data))
	count := 0
	for _, name := range names {
		if count >= limit {
			break
		}
		fmt.Fprintf(w, "%s\t%s\t\n", pos, name)
		count++
	}
	return count, nil
}
