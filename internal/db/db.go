package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clientbook/internal/config"
	"github.com/BruksfildServices01/clientbook/internal/logging"
)

// NewDB opens the single long-lived connection the program works with.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), Options(logging.ParseLevel(cfg.LogLevel)))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Configure(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Options is the gorm configuration shared by every dialect we open,
// tests included. TranslateError turns driver constraint errors into
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated. Statement caching
// is left to pgx, which already caches per connection.
func Options(level logging.Level) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			log.New(os.Stderr, "", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logging.GormLevel(level),
				IgnoreRecordNotFoundError: true,
			},
		),
	}
}

// Configure pins the pool to one connection.
func Configure(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
