// Package database opens the GORM connection selected by DATABASE_URL.
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"starwars/internal/logging"
	"starwars/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the connection settings.
type Config struct {
	URL      string
	LogLevel string
}

// Open connects to the database named by cfg.URL. Postgres URLs use the postgres driver,
// everything else is treated as a sqlite path.
func Open(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(Dialector(cfg.URL), &gorm.Config{
		Logger:         newGormLogger(cfg.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if !IsPostgres(cfg.URL) {
		// sqlite allows a single writer; one connection avoids "database is locked".
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sqlite connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Dialector picks the GORM driver for a DATABASE_URL value.
func Dialector(url string) gorm.Dialector {
	if IsPostgres(url) {
		return postgres.Open(url)
	}
	return sqlite.Open(SQLiteDSN(url))
}

// IsPostgres reports whether url points at a postgres server.
func IsPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// SQLiteDSN turns a sqlite URL (sqlite:////abs/path.db, sqlite:///rel.db, file:..., or a
// bare path) into a go-sqlite3 DSN with foreign key enforcement switched on.
func SQLiteDSN(url string) string {
	dsn := strings.TrimPrefix(url, "sqlite:///")
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping checks that the underlying connection is alive.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	logging.Warn().Str("component", "gorm").Msgf(format, args...)
}

func newGormLogger(level string) logger.Interface {
	gormLevel := logger.Warn
	switch strings.ToLower(level) {
	case "debug", "trace":
		gormLevel = logger.Info
	case "error":
		gormLevel = logger.Error
	case "silent", "disabled":
		gormLevel = logger.Silent
	}
	return logger.New(gormWriter{}, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  gormLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
