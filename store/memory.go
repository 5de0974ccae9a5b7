package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"fincoach"
)

// Memory is an in-memory Store. It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	records []Record
	imports []ImportRecord
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Append adds one transaction under a fresh UUID.
func (m *Memory) Append(tx fincoach.Transaction) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.records = append(m.records, Record{ID: id, Transaction: tx})
	return id, nil
}

// Transactions returns a copy of the collection ordered by date
// descending; ties keep insertion order.
func (m *Memory) Transactions() ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := append([]Record(nil), m.records...)
	sort.SliceStable(snapshot, func(i, j int) bool { return snapshot[i].Date > snapshot[j].Date })
	return snapshot, nil
}

// UpdateCategory patches a single record's category.
func (m *Memory) UpdateCategory(id string, category fincoach.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].Category = category
			return nil
		}
	}
	return ErrNotFound
}

// Wipe removes all records and import history.
func (m *Memory) Wipe() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = nil
	m.imports = nil
	return nil
}

// AddImport records import metadata under a fresh UUID.
func (m *Memory) AddImport(rec ImportRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	m.imports = append(m.imports, rec)
	return nil
}

// Imports returns import metadata, most recent first.
func (m *Memory) Imports() ([]ImportRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := append([]ImportRecord(nil), m.imports...)
	sort.SliceStable(snapshot, func(i, j int) bool { return snapshot[i].ImportedAt.After(snapshot[j].ImportedAt) })
	return snapshot, nil
}
