package reports

import (
	"fmt"
	"slices"
	"strings"
)

// SplitWords splits on spaces, tabs, carriage returns and newlines only.
func SplitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// CountWords folds case before counting.
func CountWords(words []string) map[string]int {
	freq := make(map[string]int)
	for _, w := range words {
		freq[strings.ToLower(w)]++
	}
	return freq
}

func WordCountReport(text string) (string, bool) {
	words := SplitWords(text)
	if len(words) == 0 {
		return "No words found in file.\n", false
	}

	freq := CountWords(words)
	keys := make([]string, 0, len(freq))
	for w := range freq {
		keys = append(keys, w)
	}
	slices.Sort(keys)

	lines := []string{"Word Count Results", strings.Repeat("=", ruleWidth)}
	for _, w := range keys {
		lines = append(lines, fmt.Sprintf("%s: %d", w, freq[w]))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Total distinct words: %d", len(freq)),
		fmt.Sprintf("Total words: %d", len(words)),
		"",
	)
	return strings.Join(lines, "\n"), true
}
