package identity

import (
	"context"
	"strconv"
	"sync"
)

// MemoryRegistry is an in-memory Registry, used in tests and as the
// registry fake for resolver callers that have no database.
type MemoryRegistry struct {
	mu      sync.RWMutex
	records []*Record
	nextID  int
}

// NewMemoryRegistry creates an empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{nextID: 1}
}

// FindOne returns the first matching record in insertion order, or nil.
func (m *MemoryRegistry) FindOne(_ context.Context, f Filter) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.records {
		if f.Match(rec) {
			out := *rec
			return &out, nil
		}
	}
	return nil, nil
}

// Count returns the number of matching records.
func (m *MemoryRegistry) Count(_ context.Context, f Filter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, rec := range m.records {
		if f.Match(rec) {
			n++
		}
	}
	return n, nil
}

// Insert stores a copy of the record and returns its generated ID.
func (m *MemoryRegistry) Insert(_ context.Context, rec *Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *rec
	stored.ID = strconv.Itoa(m.nextID)
	m.nextID++
	m.records = append(m.records, &stored)
	return stored.ID, nil
}

// Update patches matching records and returns the matched count.
func (m *MemoryRegistry) Update(_ context.Context, f Filter, p Patch) (int64, error) {
	if f.IsZero() {
		return 0, ErrEmptyFilter
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, rec := range m.records {
		if f.Match(rec) {
			p.Apply(rec)
			n++
		}
	}
	return n, nil
}
