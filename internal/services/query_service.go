package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"passport-query-api/internal/models"
	"passport-query-api/internal/repositories"
)

// Validation failure messages returned to clients.
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgInvalidEmail      = "Invalid email format"
	MsgInvalidPhone      = "Invalid phone number format"
)

// queryService implements the QueryService interface
type queryService struct {
	queryRepo repositories.QueryRepository
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewQueryService creates a new query service instance
func NewQueryService(queryRepo repositories.QueryRepository, logger *logrus.Logger) QueryService {
	if logger == nil {
		logger = logrus.New()
	}
	return &queryService{
		queryRepo: queryRepo,
		validator: validator.New(),
		logger:    logger,
	}
}

// SubmitQuery validates the submitted form and persists it as a new record.
func (s *queryService) SubmitQuery(ctx context.Context, req *SubmitQueryRequest) (*models.Query, error) {
	if req == nil {
		return nil, models.NewValidationError("", MsgAllFieldsRequired)
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}

	query := models.NewQuery()
	query.Name = req.Name
	query.Email = req.Email
	query.Phone = req.CountryCode + models.CleanPhoneDigits(req.Phone, req.CountryCode)
	query.CountryCode = req.CountryCode
	query.Category = req.Category
	query.SubCategory = req.SubCategory
	query.Query = req.Query

	if err := s.queryRepo.Create(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":       query.ID,
		"category": query.Category,
	}).Info("Query submitted")

	return query, nil
}

// validate applies the submission checks in order: presence, email format,
// phone format. The first failing check short-circuits.
func (s *queryService) validate(req *SubmitQueryRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return models.NewValidationError(firstFailedField(err), MsgAllFieldsRequired)
	}

	if !models.IsValidEmail(req.Email) {
		return models.NewValidationError("email", MsgInvalidEmail)
	}

	if !models.IsValidPhone(req.Phone, req.CountryCode) {
		return models.NewValidationError("phone", MsgInvalidPhone)
	}

	return nil
}

func firstFailedField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}
