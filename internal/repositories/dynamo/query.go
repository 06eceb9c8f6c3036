package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"

	"passport-query-api/internal/models"
	"passport-query-api/internal/repositories"
)

// PutItemAPI is the slice of the DynamoDB client this repository uses.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// QueryRepository persists query records in a DynamoDB table keyed by id.
type QueryRepository struct {
	client PutItemAPI
	table  string
	logger *logrus.Logger
}

// NewQueryRepository creates a DynamoDB-backed query repository.
func NewQueryRepository(client PutItemAPI, table string, logger *logrus.Logger) repositories.QueryRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &QueryRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Create inserts the record with a single unconditional PutItem call. Write
// failures are wrapped as store errors; the SDK message stays in the logs.
func (r *QueryRepository) Create(ctx context.Context, query *models.Query) error {
	if err := query.Validate(); err != nil {
		return repositories.NewStoreError("create", r.table, query.ID, fmt.Errorf("%w: %v", repositories.ErrValidation, err))
	}

	item, err := attributevalue.MarshalMap(query)
	if err != nil {
		return repositories.NewStoreError("marshal", r.table, query.ID, err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		r.logger.WithFields(logrus.Fields{
			"table": r.table,
			"id":    query.ID,
			"error": err.Error(),
		}).Error("DynamoDB PutItem failed")
		return repositories.NewStoreError("create", r.table, query.ID, err)
	}

	return nil
}
