// Package importer reads externally produced transaction files at the
// import boundary. It accepts the canonical CSV interchange format and
// the same columns in an XLSX workbook, filling the optional columns
// with their documented defaults before anything downstream sees the
// records.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"fincoach"
)

// Defaults applied to optional columns that are absent or empty.
const (
	DefaultCategory = "Uncategorized"
	DefaultSource   = "Checking"
)

// ReadFile imports transactions from path, dispatching on the file
// extension: ".xlsx" is read as a workbook, anything else as CSV.
func ReadFile(path string) ([]fincoach.Transaction, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	txs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return txs, nil
}

// ReadCSV imports transactions from the canonical CSV format. The first
// row must be a header naming at least the date, amount, and merchant
// columns; category, source, and memo are optional and default-filled.
func ReadCSV(r io.Reader) ([]fincoach.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return fromRows(rows)
}

// fromRows converts a header row plus data rows into transactions.
// Row numbers in errors are 1-based and count the header.
func fromRows(rows [][]string) ([]fincoach.Transaction, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "amount", "merchant"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var txs []fincoach.Transaction
	for n, row := range rows[1:] {
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}

		date := cell(row, "date")
		if date == "" {
			return nil, fmt.Errorf("row %d: missing date", n+2)
		}
		amount, err := decimal.NewFromString(cell(row, "amount"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid amount %q", n+2, cell(row, "amount"))
		}

		category := cell(row, "category")
		if category == "" {
			category = DefaultCategory
		}
		source := cell(row, "source")
		if source == "" {
			source = DefaultSource
		}

		txs = append(txs, fincoach.Transaction{
			Date:     date,
			Amount:   amount,
			Merchant: cell(row, "merchant"),
			Category: fincoach.Category(category),
			Source:   source,
			Memo:     cell(row, "memo"),
		})
	}
	return txs, nil
}
