package database

import (
	"fmt"
	"os"
	"path/filepath"

	"stockroom/internal/database/migration"

	"go.uber.org/zap"
)

func RunMigrations(migrationsDir string, log *zap.Logger) error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	migrationsURL := "file://" + absPath

	return migration.Migrate(dbURL, migrationsURL, true, log)
}
