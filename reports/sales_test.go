package reports

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func decode(t *testing.T, doc string) interface{} {
	t.Helper()
	v, err := DecodeJSON([]byte(doc))
	if err != nil {
		t.Fatalf("decode %s: %v", doc, err)
	}
	return v
}

const catalogueDoc = `[
  {"title": "Apple", "price": 1.5},
  {"name": " Pear ", "price": 2},
  {"title": "Bad", "price": "x"},
  {"price": 3},
  {"title": "Neg", "price": -1}
]`

func TestBuildPriceMap(t *testing.T) {
	prices, errs := BuildPriceMap(decode(t, catalogueDoc))

	if len(prices) != 2 || prices["Apple"] != 1.5 || prices["Pear"] != 2 {
		t.Fatalf("unexpected prices: %v", prices)
	}
	want := []string{
		"Catalog entry 3 (Bad): invalid price 'x'",
		"Catalog entry 4: missing product title/name",
		"Catalog entry 5 (Neg): negative price -1.0",
	}
	if strings.Join(errs, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected errors:\n%s", strings.Join(errs, "\n"))
	}
}

func TestSaleTotalQuantityFallbacks(t *testing.T) {
	prices := map[string]float64{"Apple": 1.5, "Pear": 2}
	sale := decode(t, `{"items": [
	  {"title": "Apple", "qty": 2},
	  {"title": "Pear", "amount": 3},
	  {"title": "Pear"},
	  {"title": "Apple", "quantity": "lots"}
	]}`).(map[string]interface{})

	total, errs := SaleTotal(sale, prices, 0)
	if total != 11 {
		t.Fatalf("expected 11, got %v", total)
	}
	if len(errs) != 1 || errs[0] != "Sale 1, item 4 (Apple): invalid quantity 'lots'" {
		t.Fatalf("unexpected errors: %q", errs)
	}
}

func TestSaleTotalWithoutProducts(t *testing.T) {
	total, errs := SaleTotal(map[string]interface{}{}, nil, 2)
	if total != 0 || len(errs) != 1 || errs[0] != "Sale 3: missing Products/products/items array" {
		t.Fatalf("unexpected result %v %q", total, errs)
	}
}

func TestSalesReport(t *testing.T) {
	sales := decode(t, `[
	  {"sale": "S1", "products": [{"title": "Apple", "quantity": 2}, {"title": "Pear"}]},
	  {"items": [{"title": "Ghost", "qty": 1}]},
	  "oops"
	]`)

	text, ok := SalesReport(decode(t, catalogueDoc), sales)
	if !ok {
		t.Fatal("report should succeed")
	}
	for _, want := range []string{
		"Total number of sales: 2",
		"Grand total: $5.00",
		"  1. S1: $5.00",
		"  2. Sale 2: $0.00",
		"Warnings/Errors (execution continued):",
		"Sale 2, item 1: product 'Ghost' not in catalogue",
		"Sale record 3: expected object, skipped",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestSalesReportRejectsNonArray(t *testing.T) {
	text, ok := SalesReport(decode(t, `[]`), decode(t, `{"sale": 1}`))
	if ok || !strings.Contains(text, "Sales record must be a JSON array.") {
		t.Fatalf("unexpected result %q, %v", text, ok)
	}
}

func TestNumericTitlesKeepIntegerForm(t *testing.T) {
	prices, _ := BuildPriceMap(decode(t, `[{"title": 5, "price": 1}]`))
	if _, ok := prices["5"]; !ok {
		t.Fatalf("expected key \"5\", got %v", prices)
	}
}

func TestSalesReportFromFiles(t *testing.T) {
	dir := t.TempDir()
	catalogue := filepath.Join(dir, "catalogue.json")
	sales := filepath.Join(dir, "sales.json")
	if err := os.WriteFile(catalogue, []byte(catalogueDoc), 0644); err != nil {
		t.Fatal(err)
	}

	text, ok := SalesReportFromFiles(filepath.Join(dir, "missing.json"), sales)
	if ok || !strings.HasPrefix(text, "Error: File not found: ") {
		t.Fatalf("unexpected result %q, %v", text, ok)
	}

	if err := os.WriteFile(sales, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	text, ok = SalesReportFromFiles(catalogue, sales)
	if ok || !strings.Contains(text, "Error: Invalid JSON in ") {
		t.Fatalf("unexpected result %q, %v", text, ok)
	}

	if err := os.WriteFile(sales, []byte(`[{"products": [{"title": "Apple"}]}]`), 0644); err != nil {
		t.Fatal(err)
	}
	text, ok = SalesReportFromFiles(catalogue, sales)
	if !ok || !strings.Contains(text, "Grand total: $1.50") {
		t.Fatalf("unexpected result %q, %v", text, ok)
	}
}
