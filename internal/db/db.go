package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pagehelm/internal/config"
	"pagehelm/models"
)

// Initialize opens the configured database. A postgres URL selects the
// postgres driver; anything else (including the empty default) is treated
// as a sqlite path so a single binary runs with zero external services.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	url := strings.TrimSpace(cfg.URL)
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		dialector = postgres.Open(url)
	case url == "":
		dialector = sqlite.Open("pagehelm.db")
	default:
		dialector = sqlite.Open(url)
	}

	database, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return database, nil
}

// AutoMigrate creates or updates the schema for every entity the store
// owns.
func AutoMigrate(database *gorm.DB) error {
	if database == nil {
		return fmt.Errorf("database handle is nil")
	}
	return database.AutoMigrate(
		&models.User{},
		&models.Page{},
		&models.Plan{},
	)
}

// Configure opens and migrates the database in one step.
func Configure(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := Initialize(cfg)
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(database); err != nil {
		return nil, err
	}
	return database, nil
}
