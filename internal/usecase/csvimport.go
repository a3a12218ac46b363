package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMaxImportBytes caps accepted import files at 10 MB.
const DefaultMaxImportBytes = 10 << 20

// requiredImportFields must all appear in the header line, case-insensitive.
var requiredImportFields = []string{
	"order-id",
	"order-item-id",
	"sku",
	"quantity-purchased",
	"recipient-name",
	"ship-address-1",
	"ship-city",
	"ship-state",
	"ship-postal-code",
}

var (
	marketplaceOrderIDPattern = regexp.MustCompile(`^\d{3}-\d{7}-\d{7}$`)
	serialOrderIDPattern      = regexp.MustCompile(`^SP-\d+$`)
	numericSKUPattern         = regexp.MustCompile(`^\d+$`)
)

// FileMeta describes the candidate import file.
type FileMeta struct {
	Name string
	Size int64
}

// ImportValidationResult reports fatal errors and advisory warnings for one
// candidate file. Warnings never affect validity.
type ImportValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// CSVImportValidator pre-validates bulk order import files locally, before
// any upload cost is incurred. The size cap is fixed at construction.
type CSVImportValidator struct {
	maxBytes int64
}

// NewCSVImportValidator builds a validator with the given size cap; values
// below one fall back to the default.
func NewCSVImportValidator(maxBytes int64) *CSVImportValidator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImportBytes
	}
	return &CSVImportValidator{maxBytes: maxBytes}
}

// Validate runs structural checks in order, short-circuiting on the first
// fatal failure. Header problems report every missing column, not just the
// first. Content heuristics on the first data row only ever add warnings.
func (v *CSVImportValidator) Validate(meta FileMeta, content string) ImportValidationResult {
	result := ImportValidationResult{Errors: []string{}, Warnings: []string{}}

	if !strings.HasSuffix(strings.ToLower(meta.Name), ".csv") {
		result.Errors = append(result.Errors, "file must have a .csv extension")
		return result
	}

	if meta.Size > v.maxBytes {
		result.Errors = append(result.Errors, fmt.Sprintf("file size %d bytes exceeds the %d byte limit", meta.Size, v.maxBytes))
		return result
	}

	lines := nonEmptyLines(content)
	if len(lines) < 2 {
		result.Errors = append(result.Errors, "file must contain a header line and at least one data line")
		return result
	}

	header := headerFields(lines[0])
	columns := make(map[string]int, len(header))
	for i, field := range header {
		if _, ok := columns[field]; !ok {
			columns[field] = i
		}
	}

	var missing []string
	for _, field := range requiredImportFields {
		if _, ok := columns[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		for _, field := range missing {
			result.Errors = append(result.Errors, fmt.Sprintf("missing required column %q", field))
		}
		return result
	}

	row := strings.Split(lines[1], ",")
	if len(row) != len(header) {
		result.Errors = append(result.Errors, fmt.Sprintf("header has %d columns but the first data row has %d", len(header), len(row)))
		return result
	}

	if orderID := strings.TrimSpace(row[columns["order-id"]]); !marketplaceOrderIDPattern.MatchString(orderID) && !serialOrderIDPattern.MatchString(orderID) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("order-id %q does not match a known order id format", orderID))
	}
	if sku := strings.TrimSpace(row[columns["sku"]]); !numericSKUPattern.MatchString(sku) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("sku %q is not numeric", sku))
	}

	result.Valid = true
	return result
}

func nonEmptyLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func headerFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = strings.ToLower(strings.TrimSpace(field))
	}
	return fields
}
