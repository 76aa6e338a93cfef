// Package reports holds the small batch computations that sit next to the
// reservation store: descriptive statistics, base conversion, word counting
// and sales totals. Each one produces the text report written to disk.
package reports

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
)

const ruleWidth = 40

// ParseNumbers reads one number per non-blank line. Lines that do not parse
// are reported (1-based) and skipped.
func ParseNumbers(lines []string) ([]float64, []string) {
	numbers := []float64{}
	var errs []string
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			msg := fmt.Sprintf("Error in line %d: invalid data '%s'", i+1, line)
			errs = append(errs, msg)
			log.Println(msg)
			continue
		}
		numbers = append(numbers, value)
	}
	return numbers, errs
}

func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// formatNumber prints whole floats with a trailing ".0" ("3.0", "-2.0") and
// everything else in shortest form. Magnitudes below 1e-4 or from 1e16 up
// switch to exponent form ("1e+16", "1e-05").
func formatNumber(v float64) string {
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
