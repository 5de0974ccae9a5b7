// Package store defines the record-store collaborator that owns
// transactions after normalization. The pipeline itself only needs an
// ordered snapshot read and a single-field patch; everything else here
// exists so imports have somewhere to land.
//
// Two implementations are provided: Memory for tests and embedding, and
// File, which keeps the collection in a canonical CSV file on disk with
// last-write-wins semantics.
package store

import (
	"errors"
	"time"

	"fincoach"
)

// ErrNotFound is returned when a record ID does not exist.
var ErrNotFound = errors.New("record not found")

// Record is a stored transaction with its store identity.
type Record struct {
	ID string
	fincoach.Transaction
}

// ImportRecord captures the metadata of one completed import.
// Recording it is best-effort: callers must not fail an import because
// its metadata could not be written.
type ImportRecord struct {
	ID               string
	FileName         string
	FileSize         int64
	ImportedAt       time.Time
	TransactionCount int
}

// Store is the record-store contract. Implementations are free to choose
// their storage technology; the pipeline relies only on the snapshot
// ordering and patch semantics below.
type Store interface {
	// Append adds one transaction to the collection and returns its ID.
	Append(tx fincoach.Transaction) (string, error)

	// Transactions returns a snapshot ordered by date descending.
	// Records sharing a date keep their insertion order.
	Transactions() ([]Record, error)

	// UpdateCategory patches the category of a single record.
	// Returns ErrNotFound for an unknown ID.
	UpdateCategory(id string, category fincoach.Category) error

	// Wipe deletes every record and import record in the collection.
	Wipe() error

	// AddImport records an import's metadata.
	AddImport(rec ImportRecord) error

	// Imports returns import metadata ordered most recent first.
	Imports() ([]ImportRecord, error)
}
