package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"fincoach"
	"fincoach/importer"
	"fincoach/statement"
)

// File is a Store backed by a canonical CSV file. The file's row order
// is the collection's insertion order, and a record's ID is its 1-based
// row ordinal in that order. Import metadata lives in a ".imports.csv"
// sidecar next to the collection file.
//
// Writes rewrite the whole file; concurrent writers get last write wins,
// which is all the collection promises.
type File struct {
	path string
}

var _ Store = (*File)(nil)

// NewFile creates a file-backed store at path. The file is created on
// first append.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the collection file path.
func (f *File) Path() string {
	return f.path
}

func (f *File) importsPath() string {
	return f.path + ".imports.csv"
}

// load reads the collection in file order. A missing file is an empty
// collection.
func (f *File) load() ([]fincoach.Transaction, error) {
	txs, err := importer.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// write rewrites the collection file in the canonical format.
func (f *File) write(txs []fincoach.Transaction) error {
	result := &statement.Result{Transactions: txs}
	if err := os.WriteFile(f.path, []byte(result.CSV()+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}

// Append adds one transaction to the end of the file and returns its
// row ordinal as the record ID.
func (f *File) Append(tx fincoach.Transaction) (string, error) {
	txs, err := f.load()
	if err != nil {
		return "", err
	}
	txs = append(txs, tx)
	if err := f.write(txs); err != nil {
		return "", err
	}
	return strconv.Itoa(len(txs)), nil
}

// Transactions returns the collection ordered by date descending; rows
// sharing a date keep file order. IDs refer to file order, so they stay
// valid across reads until the file is rewritten by another writer.
func (f *File) Transactions() ([]Record, error) {
	txs, err := f.load()
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(txs))
	for i, tx := range txs {
		records[i] = Record{ID: strconv.Itoa(i + 1), Transaction: tx}
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date > records[j].Date })
	return records, nil
}

// UpdateCategory patches one row's category and rewrites the file.
func (f *File) UpdateCategory(id string, category fincoach.Category) error {
	txs, err := f.load()
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(id)
	if err != nil || n < 1 || n > len(txs) {
		return ErrNotFound
	}
	txs[n-1].Category = category
	return f.write(txs)
}

// Wipe deletes the collection file and its import sidecar.
func (f *File) Wipe() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", f.path, err)
	}
	if err := os.Remove(f.importsPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", f.importsPath(), err)
	}
	return nil
}

// AddImport appends one metadata row to the import sidecar.
func (f *File) AddImport(rec ImportRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	file, err := os.OpenFile(f.importsPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.importsPath(), err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{
		rec.ID,
		rec.FileName,
		strconv.FormatInt(rec.FileSize, 10),
		rec.ImportedAt.UTC().Format(time.RFC3339),
		strconv.Itoa(rec.TransactionCount),
	}); err != nil {
		return fmt.Errorf("failed to write import record: %w", err)
	}
	w.Flush()
	return w.Error()
}

// Imports reads the sidecar, most recent import first.
func (f *File) Imports() ([]ImportRecord, error) {
	file, err := os.Open(f.importsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.importsPath(), err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.importsPath(), err)
	}

	records := make([]ImportRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) != 5 {
			continue
		}
		size, _ := strconv.ParseInt(row[2], 10, 64)
		at, _ := time.Parse(time.RFC3339, row[3])
		count, _ := strconv.Atoi(row[4])
		records = append(records, ImportRecord{
			ID:               row[0],
			FileName:         row[1],
			FileSize:         size,
			ImportedAt:       at,
			TransactionCount: count,
		})
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].ImportedAt.After(records[j].ImportedAt) })
	return records, nil
}
