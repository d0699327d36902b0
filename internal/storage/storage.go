package storage

import (
	"database/sql"
	"fmt"
	"time"

	"flashcards/internal/config"
	"flashcards/internal/repository"
	"flashcards/internal/repository/postgres"
	"flashcards/internal/repository/sqlite"
	"flashcards/internal/repository/textfile"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Retry policy for the postgres connection
var (
	maxRetries = 30
	retryDelay = 2 * time.Second
)

// Open builds the word repository selected by cfg.Storage.
// The returned close function releases any connection it holds.
func Open(cfg *config.Config, logger *zap.Logger) (repository.WordRepository, func() error, error) {
	switch cfg.Storage {
	case config.StorageFile:
		path := cfg.WordsPath()
		logger.Info("Using words file", zap.String("path", path))
		return textfile.NewWordRepo(path), func() error { return nil }, nil

	case config.StorageSQLite:
		logger.Info("Using sqlite database", zap.String("path", cfg.SQLitePath))
		repo, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil

	case config.StoragePostgres:
		db, err := connectDatabase("postgres", cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connection established")

		changed, err := postgres.Migrate(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		if changed {
			logger.Info("Migrations applied successfully")
		} else {
			logger.Info("No new migrations to apply")
		}
		return postgres.NewWordRepo(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

// connectDatabase connects with retries
func connectDatabase(driver, dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open(driver, dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}
