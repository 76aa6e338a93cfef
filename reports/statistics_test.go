package reports

import (
	"math"
	"slices"
	"strings"
	"testing"
)

func TestParseNumbers(t *testing.T) {
	numbers, errs := ParseNumbers([]string{"1", "", "abc", " 2.5 ", "nan", "-3", "-Inf"})

	if !slices.Equal(numbers, []float64{1, 2.5, -3}) {
		t.Fatalf("unexpected numbers: %v", numbers)
	}
	want := []string{
		"Error in line 3: invalid data 'abc'",
		"Error in line 5: invalid data 'nan'",
		"Error in line 7: invalid data '-Inf'",
	}
	if !slices.Equal(errs, want) {
		t.Fatalf("unexpected errors: %q", errs)
	}
}

func TestDescriptiveStatistics(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	mean, ok := Mean(data)
	if !ok || mean != 5 {
		t.Fatalf("mean = %v, %v", mean, ok)
	}
	median, _ := Median(data)
	if median != 4.5 {
		t.Fatalf("median = %v", median)
	}
	variance, _ := Variance(data, mean)
	if variance != 4 {
		t.Fatalf("variance = %v", variance)
	}
	std, _ := StdDev(variance)
	if math.Abs(std-2) > 1e-12 {
		t.Fatalf("std = %v", std)
	}
	if mode := Mode(data); !slices.Equal(mode, []float64{4}) {
		t.Fatalf("mode = %v", mode)
	}
}

func TestMedianOddDoesNotReorderInput(t *testing.T) {
	data := []float64{9, 1, 5}
	median, _ := Median(data)
	if median != 5 {
		t.Fatalf("median = %v", median)
	}
	if !slices.Equal(data, []float64{9, 1, 5}) {
		t.Fatalf("input was modified: %v", data)
	}
}

func TestModeTies(t *testing.T) {
	cases := []struct {
		in   []float64
		want []float64
	}{
		{[]float64{1, 2, 2, 3, 3}, []float64{2, 3}},
		{[]float64{3, 1, 2}, []float64{1, 2, 3}},
		{[]float64{7}, []float64{7}},
	}
	for _, tc := range cases {
		if got := Mode(tc.in); !slices.Equal(got, tc.want) {
			t.Errorf("Mode(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEmptyStatistics(t *testing.T) {
	if _, ok := Mean(nil); ok {
		t.Fatal("mean of nothing should fail")
	}
	if _, ok := Median(nil); ok {
		t.Fatal("median of nothing should fail")
	}
	if Mode(nil) != nil {
		t.Fatal("mode of nothing should be nil")
	}
	text, ok := StatisticsReport(nil)
	if ok || text != "No valid numbers found in file.\n" {
		t.Fatalf("unexpected empty report %q, %v", text, ok)
	}
}

func TestStatisticsReport(t *testing.T) {
	text, ok := StatisticsReport([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !ok {
		t.Fatal("report should succeed")
	}
	for _, want := range []string{
		"Count: 8",
		"Media: 5.0",
		"Mediana: 4.5",
		"Moda: 4.0",
		"Varianza Poblacional: 4.0",
		"Desviacion Estandar Poblacional: 2.0",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		3:       "3.0",
		-2:      "-2.0",
		2.5:     "2.5",
		0.1:     "0.1",
		0.0001:  "0.0001",
		1e-5:    "1e-05",
		-2.5e-7: "-2.5e-07",
		1e15:    "1000000000000000.0",
		1e16:    "1e+16",
		1.5e20:  "1.5e+20",
		0:       "0.0",
	}
	for in, want := range cases {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
