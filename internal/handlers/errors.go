package handlers

import (
	"errors"

	"passport-query-api/internal/models"
	"passport-query-api/internal/repositories"
)

// MessageResponse is the body shape shared by every endpoint outcome.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Fixed response messages.
const (
	MsgSubmitted     = "Query submitted successfully."
	MsgNotFound      = "Not Found"
	MsgInternalError = "Internal Server Error"
)

// isValidationError checks if an error is a client validation error
func isValidationError(err error) bool {
	var verr *models.ValidationError
	return errors.As(err, &verr)
}

// isStoreError checks if an error originated at the store boundary
func isStoreError(err error) bool {
	return repositories.IsStoreError(err)
}
