package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"passport-query-api/internal/models"
	"passport-query-api/internal/repositories"
)

// QueryRepository implements repositories.QueryRepository on SQLite. It
// backs the server deployment mode, where DynamoDB is not available.
type QueryRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewQueryRepository creates a new SQLite query repository
func NewQueryRepository(db *sql.DB, logger *logrus.Logger) repositories.QueryRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &QueryRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new query record.
func (r *QueryRepository) Create(ctx context.Context, query *models.Query) error {
	if err := query.Validate(); err != nil {
		return repositories.NewStoreError("create", "queries", query.ID, fmt.Errorf("%w: %v", repositories.ErrValidation, err))
	}

	stmt := `
		INSERT INTO queries (
			id, name, email, phone, country_code, category, subcategory, query, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, stmt,
		query.ID,
		query.Name,
		query.Email,
		query.Phone,
		query.CountryCode,
		query.Category,
		query.SubCategory,
		query.Query,
		query.Timestamp,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return repositories.NewStoreError("create", "queries", query.ID, repositories.ErrDuplicateEntry)
		}
		r.logger.WithFields(logrus.Fields{
			"id":    query.ID,
			"error": err.Error(),
		}).Error("SQLite insert failed")
		return repositories.NewStoreError("create", "queries", query.ID, err)
	}

	return nil
}
