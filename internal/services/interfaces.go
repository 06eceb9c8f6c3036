package services

import (
	"context"

	"passport-query-api/internal/models"
)

// SubmitQueryRequest is the strongly-typed submission payload. Every field
// is required; a presence failure surfaces as a single client validation
// error with the canonical message.
type SubmitQueryRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Query       string `json:"query" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	CountryCode string `json:"countryCode" validate:"required"`
	Category    string `json:"category" validate:"required"`
	SubCategory string `json:"subCategory" validate:"required"`
}

// QueryService defines the form-intake operations
type QueryService interface {
	// SubmitQuery validates the submission and persists it as a new record,
	// returning the stored record. Validation always precedes the write; a
	// rejected submission is never persisted.
	SubmitQuery(ctx context.Context, req *SubmitQueryRequest) (*models.Query, error)
}
