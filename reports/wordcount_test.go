package reports

import (
	"strings"
	"testing"
)

func TestCountWordsFoldsCase(t *testing.T) {
	words := SplitWords("The the\tcat\r\nCat  dog\n")
	if len(words) != 5 {
		t.Fatalf("expected 5 words, got %q", words)
	}

	freq := CountWords(words)
	if freq["the"] != 2 || freq["cat"] != 2 || freq["dog"] != 1 || len(freq) != 3 {
		t.Fatalf("unexpected frequencies: %v", freq)
	}
}

func TestSplitWordsKeepsPunctuation(t *testing.T) {
	words := SplitWords("hello, world!")
	if len(words) != 2 || words[0] != "hello," || words[1] != "world!" {
		t.Fatalf("unexpected words: %q", words)
	}
}

func TestWordCountReport(t *testing.T) {
	text, ok := WordCountReport("b a B")
	if !ok {
		t.Fatal("report should succeed")
	}
	if !strings.Contains(text, "a: 1\nb: 2") {
		t.Fatalf("words should be listed in order:\n%s", text)
	}
	if !strings.Contains(text, "Total distinct words: 2") || !strings.Contains(text, "Total words: 3") {
		t.Fatalf("missing totals:\n%s", text)
	}

	text, ok = WordCountReport(" \n\t")
	if ok || text != "No words found in file.\n" {
		t.Fatalf("unexpected empty report %q, %v", text, ok)
	}
}
