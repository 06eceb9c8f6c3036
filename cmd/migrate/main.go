package main

import (
	"flag"
	"path/filepath"

	"passport-query-api/internal/database"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		dbPath  = flag.String("db", "./data/queries.db", "Database file path")
		down    = flag.Bool("down", false, "Roll back the most recent migration instead of applying")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	absDBPath, err := filepath.Abs(*dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute database path")
	}

	logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"down":    *down,
	}).Info("Starting migration tool")

	db, err := database.Open(absDBPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database")
	}
	defer db.Close()

	if *down {
		err = database.Rollback(db)
	} else {
		err = database.Migrate(db)
	}
	if err != nil {
		logger.WithError(err).Fatal("Migration failed")
	}

	logger.Info("Migration tool completed successfully")
}
