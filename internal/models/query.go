package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Query represents a submitted passport query form. Records are create-only:
// once written they are never updated or deleted by this system.
type Query struct {
	ID          string `json:"id" db:"id" dynamodbav:"id"`
	Name        string `json:"name" db:"name" dynamodbav:"name"`
	Email       string `json:"email" db:"email" dynamodbav:"email"`
	Phone       string `json:"phone" db:"phone" dynamodbav:"phone"`
	CountryCode string `json:"countryCode" db:"country_code" dynamodbav:"countryCode"`
	Category    string `json:"category" db:"category" dynamodbav:"category"`
	SubCategory string `json:"subCategory" db:"subcategory" dynamodbav:"subCategory"`
	Query       string `json:"query" db:"query" dynamodbav:"query"`
	Timestamp   string `json:"timestamp" db:"timestamp" dynamodbav:"timestamp"`
}

// NewQuery creates a new query record with a generated ID and a UTC
// creation timestamp. The ID is assigned exactly once, here.
func NewQuery() *Query {
	return &Query{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Validate checks that the record is complete enough to persist. Field
// format checks happen before the record is built; this is the last guard
// ahead of a store write.
func (q *Query) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("query ID is required")
	}
	if q.Timestamp == "" {
		return fmt.Errorf("query timestamp is required")
	}
	if q.Name == "" || q.Email == "" || q.Phone == "" || q.CountryCode == "" ||
		q.Category == "" || q.SubCategory == "" || q.Query == "" {
		return fmt.Errorf("query record has empty required fields")
	}
	return nil
}
