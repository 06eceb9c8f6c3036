package server

import (
	"context"
	"database/sql"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"

	"passport-query-api/internal/config"
	"passport-query-api/internal/database"
	"passport-query-api/internal/repositories"
	"passport-query-api/internal/repositories/dynamo"
	"passport-query-api/internal/repositories/sqlite"
	"passport-query-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *logrus.Logger
	QueryRepo    repositories.QueryRepository
	QueryService services.QueryService

	db *sql.DB
}

// NewContainer creates a new dependency injection container. The store
// client lives here and is handed to the service, never reached through a
// package-level singleton.
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: newLogger(cfg),
	}

	repo, err := container.newQueryRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	container.QueryRepo = repo
	container.QueryService = services.NewQueryService(repo, container.Logger)

	return container, nil
}

// newQueryRepository selects the store implementation from configuration.
func (c *Container) newQueryRepository(cfg *config.Config) (repositories.QueryRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Store.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Store.Region))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}

		client := dynamodb.NewFromConfig(awsCfg)
		return dynamo.NewQueryRepository(client, cfg.Store.TableName, c.Logger), nil

	case config.StoreDriverSQLite:
		db, err := database.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
		c.db = db
		return sqlite.NewQueryRepository(db, c.Logger), nil

	case config.StoreDriverMemory:
		return repositories.NewMemoryQueryRepository(), nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	if !cfg.IsDevelopment() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		c.db = nil
	}
	return nil
}
