package importer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/xuri/excelize/v2"

	"fincoach"
	"fincoach/importer"
)

func TestReadCSV(t *testing.T) {
	raw := strings.Join([]string{
		"date,amount,merchant,category,source,memo",
		"2024-01-15,6.45,Starbucks,Coffee,Credit Card,morning coffee",
		"2024-01-16,54.89,Kroger,Groceries,Credit Card,weekly groceries",
	}, "\n")

	txs, err := importer.ReadCSV(strings.NewReader(raw))
	assert.NoError(t, err)
	assert.Equal(t, 2, len(txs))

	assert.Equal(t, "2024-01-15", txs[0].Date)
	assert.Equal(t, "6.45", txs[0].Amount.String())
	assert.Equal(t, "Starbucks", txs[0].Merchant)
	assert.Equal(t, fincoach.Coffee, txs[0].Category)
	assert.Equal(t, "Credit Card", txs[0].Source)
	assert.Equal(t, "morning coffee", txs[0].Memo)
}

func TestReadCSVDefaults(t *testing.T) {
	raw := strings.Join([]string{
		"date,amount,merchant",
		"2024-01-15,6.45,Starbucks",
	}, "\n")

	txs, err := importer.ReadCSV(strings.NewReader(raw))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(txs))
	assert.Equal(t, fincoach.Category("Uncategorized"), txs[0].Category)
	assert.Equal(t, "Checking", txs[0].Source)
	assert.Equal(t, "", txs[0].Memo)
}

func TestReadCSVColumnOrderIndependent(t *testing.T) {
	raw := strings.Join([]string{
		"Merchant, Amount ,DATE",
		"Starbucks,6.45,2024-01-15",
	}, "\n")

	txs, err := importer.ReadCSV(strings.NewReader(raw))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(txs))
	assert.Equal(t, "Starbucks", txs[0].Merchant)
	assert.Equal(t, "2024-01-15", txs[0].Date)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		err  string
	}{
		{
			name: "missing required column",
			raw:  "date,merchant\n2024-01-15,Starbucks",
			err:  `missing required column "amount"`,
		},
		{
			name: "invalid amount",
			raw:  "date,amount,merchant\n2024-01-15,6.45,Starbucks\n2024-01-16,abc,Kroger",
			err:  `row 3: invalid amount "abc"`,
		},
		{
			name: "missing date",
			raw:  "date,amount,merchant\n,6.45,Starbucks",
			err:  "row 2: missing date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.ReadCSV(strings.NewReader(tt.raw))
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestReadCSVSkipsBlankRows(t *testing.T) {
	raw := "date,amount,merchant\n2024-01-15,6.45,Starbucks\n\n"

	txs, err := importer.ReadCSV(strings.NewReader(raw))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(txs))
}

func TestReadFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.xlsx")
	writeWorkbook(t, path, [][]any{
		{"date", "amount", "merchant", "category"},
		{"2024-01-15", 6.45, "Starbucks", "Coffee"},
		{"2024-01-16", 54.89, "Kroger", ""},
	})

	txs, err := importer.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(txs))
	assert.Equal(t, fincoach.Coffee, txs[0].Category)
	assert.Equal(t, fincoach.Category("Uncategorized"), txs[1].Category)
	assert.Equal(t, "Checking", txs[1].Source)
}

func TestReadFileDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")
	raw := "date,amount,merchant\n2024-01-15,6.45,Starbucks\n"
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	txs, err := importer.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(txs))
	assert.Equal(t, "Starbucks", txs[0].Merchant)
}

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		assert.NoError(t, err)
		assert.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	assert.NoError(t, f.SaveAs(path))
}
