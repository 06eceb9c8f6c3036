package repositories

import (
	"context"
	"fmt"
	"sync"

	"passport-query-api/internal/models"
)

// MemoryQueryRepository is an in-process QueryRepository backing the
// "memory" store driver and the test suites. Safe for concurrent use.
type MemoryQueryRepository struct {
	mu      sync.RWMutex
	records map[string]models.Query

	failWith error
}

// NewMemoryQueryRepository creates an empty in-memory query repository.
func NewMemoryQueryRepository() *MemoryQueryRepository {
	return &MemoryQueryRepository{
		records: make(map[string]models.Query),
	}
}

// Create inserts a new query record.
func (r *MemoryQueryRepository) Create(ctx context.Context, query *models.Query) error {
	if err := query.Validate(); err != nil {
		return NewStoreError("create", "queries", query.ID, fmt.Errorf("%w: %v", ErrValidation, err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return NewStoreError("create", "queries", query.ID, r.failWith)
	}

	if _, exists := r.records[query.ID]; exists {
		return NewStoreError("create", "queries", query.ID, ErrDuplicateEntry)
	}

	r.records[query.ID] = *query
	return nil
}

// FailWith makes every subsequent write fail with the given error, standing
// in for store-side faults like throttling or denied access.
func (r *MemoryQueryRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

// Get returns a copy of the stored record, if present.
func (r *MemoryQueryRepository) Get(id string) (*models.Query, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, false
	}
	return &record, true
}

// Len reports how many records have been written.
func (r *MemoryQueryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
