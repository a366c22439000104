package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestIsDictionaryWord(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"cat", true},
		{"ab", false},
		{"", false},
		{"Cat", false},
		{"two-words", false},
		{"cat1", false},
	}
	for _, c := range cases {
		if got := isDictionaryWord(c.in); got != c.want {
			t.Fatalf("isDictionaryWord(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPosCodeCollapsesAdjectiveSatellite(t *testing.T) {
	cases := []struct {
		in       string
		wantCode string
		wantOK   bool
	}{
		{"n", "n", true},
		{"v", "v", true},
		{"a", "j", true},
		{"s", "j", true},
		{"r", "a", true},
		{"x", "", false},
	}
	for _, c := range cases {
		code, ok := posCode(c.in)
		if ok != c.wantOK || code != c.wantCode {
			t.Fatalf("posCode(%q) = (%q, %v), want (%q, %v)", c.in, code, ok, c.wantCode, c.wantOK)
		}
	}
}

func TestAppendNameListRespectsLimit(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "names.txt")
	if err := os.WriteFile(listPath, []byte("Alice Bob Carol"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	n, err := appendNameList(w, listPath, "f", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Flush()
	if n != 2 {
		t.Fatalf("appendNameList count = %d, want 2", n)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 written rows, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "f\tAlice\t" || lines[1] != "f\tBob\t" {
		t.Fatalf("unexpected rows: %q", lines)
	}
}

func TestAppendNameListMissingFileErrors(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if _, err := appendNameList(w, filepath.Join(t.TempDir(), "missing.txt"), "f", 10); err == nil {
		t.Fatalf("expected an error for a missing name list file")
	}
}

func TestRunConvertsWordNetXMLToTSV(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "wordnet.xml")
	outPath := filepath.Join(dir, "dictionary.tsv")
	firstNamePath := filepath.Join(dir, "first-names.txt")

	xmlContent := `<?xml version="1.0"?>
<LexicalResource>
  <Lexicon>
    <LexicalEntry>
      <Lemma writtenForm="cat" partOfSpeech="n"/>
      <Sense synset="syn-cat"/>
    </LexicalEntry>
    <LexicalEntry>
      <Lemma writtenForm="dog" partOfSpeech="n"/>
      <Sense synset="syn-dog"/>
    </LexicalEntry>
    <LexicalEntry>
      <Lemma writtenForm="ox" partOfSpeech="n"/>
    </LexicalEntry>
    <LexicalEntry>
      <Lemma writtenForm="Rex" partOfSpeech="n"/>
    </LexicalEntry>
    <Synset id="syn-cat">
      <Definition>a small domesticated carnivore</Definition>
    </Synset>
  </Lexicon>
</LexicalResource>`
	if err := os.WriteFile(xmlPath, []byte(xmlContent), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(firstNamePath, []byte("Emma"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := run(xmlPath, outPath, firstNamePath, "", 10, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")

	want := []string{
		"n\tcat\ta small domesticated carnivore",
		"n\tdog\t",
		"f\tEmma\t",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d rows (dog has no synset-matched definition, ox/Rex are filtered out, cat/dog/Emma pass), got %d: %q", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("row %d = %q, want %q", i, lines[i], w)
		}
	}
}
