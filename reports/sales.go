package reports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

const salesRuleWidth = 50

// DecodeJSON decodes a document keeping numbers as json.Number so that
// titles such as 5 print as "5" rather than "5.0".
func DecodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadJSONFile returns a printable error message instead of an error value,
// because the message goes straight into the report.
func LoadJSONFile(path string) (interface{}, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "Error: File not found: " + path
		}
		return nil, fmt.Sprintf("Error reading %s: %v", path, err)
	}
	v, err := DecodeJSON(data)
	if err != nil {
		return nil, fmt.Sprintf("Error: Invalid JSON in %s: %v", path, err)
	}
	return v, ""
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	}
	return true
}

// firstTruthy returns the first truthy value among keys, or the value of the
// last key when none is truthy.
func firstTruthy(m map[string]interface{}, keys ...string) interface{} {
	var v interface{}
	for _, k := range keys {
		v = m[k]
		if truthy(v) {
			return v
		}
	}
	return v
}

func typeName(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "NoneType"
	case bool:
		return "bool"
	case string:
		return "str"
	case json.Number:
		if strings.ContainsAny(t.String(), ".eE") {
			return "float"
		}
		return "int"
	case float64:
		return "float"
	case []interface{}:
		return "list"
	case map[string]interface{}:
		return "dict"
	}
	return fmt.Sprintf("%T", v)
}

func display(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case bool:
		if t {
			return "True"
		}
		return "False"
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return formatNumber(t)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func toQuantity(v interface{}) (int, bool) {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// BuildPriceMap maps trimmed product titles to prices. Entries without a
// title, without a price, or with an invalid or negative price are skipped
// with a message.
func BuildPriceMap(catalogue interface{}) (map[string]float64, []string) {
	prices := map[string]float64{}
	var errs []string

	items, ok := catalogue.([]interface{})
	if !ok {
		return prices, append(errs, "Price catalogue must be a JSON array.")
	}

	for idx, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			errs = append(errs, fmt.Sprintf("Catalog entry %d: expected object, got %s", idx+1, typeName(raw)))
			continue
		}

		title := firstTruthy(item, "title", "name", "product")
		price := item["price"]

		if title == nil || title == "" {
			errs = append(errs, fmt.Sprintf("Catalog entry %d: missing product title/name", idx+1))
			continue
		}
		if price == nil {
			errs = append(errs, fmt.Sprintf("Catalog entry %d (%s): missing price", idx+1, display(title)))
			continue
		}
		value, ok := toFloat(price)
		if !ok {
			errs = append(errs, fmt.Sprintf("Catalog entry %d (%s): invalid price '%s'", idx+1, display(title), display(price)))
			continue
		}
		if value < 0 {
			errs = append(errs, fmt.Sprintf("Catalog entry %d (%s): negative price %s", idx+1, display(title), formatNumber(value)))
			continue
		}

		prices[strings.TrimSpace(display(title))] = value
	}
	return prices, errs
}

// SaleTotal prices one sale record. Bad line items are skipped with a
// message; the rest still count toward the total.
func SaleTotal(sale map[string]interface{}, prices map[string]float64, saleIdx int) (float64, []string) {
	var errs []string
	total := 0.0
	n := saleIdx + 1

	products := firstTruthy(sale, "Products", "products", "items")
	if products == nil {
		return total, append(errs, fmt.Sprintf("Sale %d: missing Products/products/items array", n))
	}
	list, ok := products.([]interface{})
	if !ok {
		return total, append(errs, fmt.Sprintf("Sale %d: Products must be an array", n))
	}

	for pidx, raw := range list {
		prod, ok := raw.(map[string]interface{})
		if !ok {
			errs = append(errs, fmt.Sprintf("Sale %d, item %d: expected object", n, pidx+1))
			continue
		}

		title := firstTruthy(prod, "title", "name", "product")
		qty := firstTruthy(prod, "quantity", "qty")
		if !truthy(qty) {
			if amount, present := prod["amount"]; present {
				qty = amount
			} else {
				qty = json.Number("1")
			}
		}

		if title == nil || title == "" {
			errs = append(errs, fmt.Sprintf("Sale %d, item %d: missing product title", n, pidx+1))
			continue
		}
		quantity, ok := toQuantity(qty)
		if !ok {
			errs = append(errs, fmt.Sprintf("Sale %d, item %d (%s): invalid quantity '%s'", n, pidx+1, display(title), display(qty)))
			continue
		}
		if quantity < 0 {
			errs = append(errs, fmt.Sprintf("Sale %d, item %d (%s): negative quantity", n, pidx+1, display(title)))
			continue
		}

		price, found := prices[strings.TrimSpace(display(title))]
		if !found {
			errs = append(errs, fmt.Sprintf("Sale %d, item %d: product '%s' not in catalogue", n, pidx+1, display(title)))
			continue
		}
		total += price * float64(quantity)
	}
	return total, errs
}

// SalesReport totals every sale against the catalogue. Problems are listed
// at the end of the report and never stop processing. It succeeds when at
// least one sale was processed.
func SalesReport(catalogue, sales interface{}) (string, bool) {
	prices, errs := BuildPriceMap(catalogue)

	records, ok := sales.([]interface{})
	if !ok {
		errs = append(errs, "Sales record must be a JSON array.")
		return strings.Join(errs, "\n") + "\n", false
	}

	grandTotal := 0.0
	saleNum := 0
	var saleLines []string
	for idx, raw := range records {
		sale, ok := raw.(map[string]interface{})
		if !ok {
			errs = append(errs, fmt.Sprintf("Sale record %d: expected object, skipped", idx+1))
			continue
		}

		name := fmt.Sprintf("Sale %d", idx+1)
		if v := firstTruthy(sale, "Sale", "sale"); truthy(v) {
			name = display(v)
		}

		total, saleErrs := SaleTotal(sale, prices, idx)
		errs = append(errs, saleErrs...)
		grandTotal += total
		saleNum++
		saleLines = append(saleLines, fmt.Sprintf("  %d. %s: $%.2f", saleNum, name, total))
	}

	lines := []string{
		"Sales Summary",
		strings.Repeat("=", salesRuleWidth),
		"",
		fmt.Sprintf("Total number of sales: %d", saleNum),
		fmt.Sprintf("Grand total: $%.2f", grandTotal),
		"",
		"Details:",
	}
	lines = append(lines, saleLines...)
	lines = append(lines, "")

	if len(errs) > 0 {
		lines = append(lines, "Warnings/Errors (execution continued):", strings.Repeat("-", ruleWidth))
		lines = append(lines, errs...)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), saleNum > 0 || grandTotal > 0
}

// SalesReportFromFiles loads both documents first; a catalogue or sales file
// that cannot be read or parsed ends the run with just the error.
func SalesReportFromFiles(cataloguePath, salesPath string) (string, bool) {
	catalogue, msg := LoadJSONFile(cataloguePath)
	if msg != "" {
		return msg + "\n", false
	}
	sales, msg := LoadJSONFile(salesPath)
	if msg != "" {
		_, catErrs := BuildPriceMap(catalogue)
		return strings.Join(append(catErrs, msg), "\n") + "\n", false
	}
	return SalesReport(catalogue, sales)
}
