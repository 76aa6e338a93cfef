package reports

import (
	"math"
	"math/big"
	"strings"
)

// toBase truncates v toward zero and renders its magnitude; the sign is
// dropped. The integer part is unbounded, so 1e20 keeps all its digits.
// NaN and infinities have no digits and render as "".
func toBase(v float64, base int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	n, _ := new(big.Float).SetFloat64(math.Abs(v)).Int(nil)
	return strings.ToUpper(n.Text(base))
}

func ToBinary(v float64) string {
	return toBase(v, 2)
}

func ToHexadecimal(v float64) string {
	return toBase(v, 16)
}

func ConversionReport(numbers []float64) (string, bool) {
	if len(numbers) == 0 {
		return "No valid numbers found in file.\n", false
	}

	lines := []string{"Number to Binary and Hexadecimal", strings.Repeat("=", ruleWidth)}
	for _, n := range numbers {
		lines = append(lines,
			"Number: "+formatNumber(n),
			"  Binary: "+ToBinary(n),
			"  Hexadecimal: "+ToHexadecimal(n),
			"",
		)
	}
	return strings.Join(lines, "\n"), true
}
