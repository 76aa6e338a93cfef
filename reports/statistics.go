package reports

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

func Mean(numbers []float64) (float64, bool) {
	if len(numbers) == 0 {
		return 0, false
	}
	total := 0.0
	for _, n := range numbers {
		total += n
	}
	return total / float64(len(numbers)), true
}

func Median(numbers []float64) (float64, bool) {
	if len(numbers) == 0 {
		return 0, false
	}
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}

// Mode returns every value sharing the highest frequency, ascending. When all
// values are distinct, all of them are returned.
func Mode(numbers []float64) []float64 {
	if len(numbers) == 0 {
		return nil
	}
	freq := make(map[float64]int, len(numbers))
	maxCount := 0
	for _, n := range numbers {
		freq[n]++
		maxCount = max(maxCount, freq[n])
	}
	modes := make([]float64, 0, 1)
	for n, count := range freq {
		if count == maxCount {
			modes = append(modes, n)
		}
	}
	slices.Sort(modes)
	return modes
}

// Variance is the population variance around mean.
func Variance(numbers []float64, mean float64) (float64, bool) {
	if len(numbers) == 0 {
		return 0, false
	}
	total := 0.0
	for _, n := range numbers {
		diff := n - mean
		total += diff * diff
	}
	return total / float64(len(numbers)), true
}

func StdDev(variance float64) (float64, bool) {
	if variance < 0 {
		return 0, false
	}
	return math.Sqrt(variance), true
}

// StatisticsReport renders count, mean, median, mode, population variance and
// population standard deviation. It fails when there are no numbers.
func StatisticsReport(numbers []float64) (string, bool) {
	if len(numbers) == 0 {
		return "No valid numbers found in file.\n", false
	}

	mean, _ := Mean(numbers)
	median, _ := Median(numbers)
	variance, _ := Variance(numbers, mean)
	std, _ := StdDev(variance)

	modes := Mode(numbers)
	modeStrs := make([]string, len(modes))
	for i, m := range modes {
		modeStrs[i] = formatNumber(m)
	}

	lines := []string{
		"Descriptive Statistics (Medidas solicitadas)",
		strings.Repeat("=", ruleWidth),
		fmt.Sprintf("Count: %d", len(numbers)),
		"Media: " + formatNumber(mean),
		"Mediana: " + formatNumber(median),
		"Moda: " + strings.Join(modeStrs, ", "),
		"Varianza Poblacional: " + formatNumber(variance),
		"Desviacion Estandar Poblacional: " + formatNumber(std),
		"",
	}
	return strings.Join(lines, "\n"), true
}
