package repositories

import (
	"context"

	"passport-query-api/internal/models"
)

// QueryRepository defines the durable-store operations used by the intake
// service. The store is create-only from this service's perspective: no
// read, update, delete or scan operations are ever issued.
type QueryRepository interface {
	// Create inserts a new query record keyed by its ID. There is no
	// read-before-write or conditional check; uniqueness relies on the
	// generated identifier's collision resistance.
	Create(ctx context.Context, query *models.Query) error
}
