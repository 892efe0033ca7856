package db

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Patricia-Kubende/MaizeMate-Backend/models"
)

// NewDB opens the store named by databaseURL and creates the tables if they
// are missing. A postgres DSN selects the postgres driver; anything else is
// treated as a path to a local sqlite file.
func NewDB(databaseURL string) (*gorm.DB, error) {
	dialector := dialectorFor(databaseURL)

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying SQL DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	if err := database.AutoMigrate(&models.User{}, &models.Prediction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	log.Info().Str("database", databaseURL).Msg("Connected to database")
	return database, nil
}

func dialectorFor(databaseURL string) gorm.Dialector {
	if strings.HasPrefix(databaseURL, "postgres://") ||
		strings.HasPrefix(databaseURL, "postgresql://") ||
		strings.Contains(databaseURL, "host=") {
		return postgres.Open(databaseURL)
	}
	return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
}
