package database

import (
	"errors"
	"fmt"

	"pembukuan/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager owns the connection pool of the transaction store
type Manager struct {
	db     *gorm.DB
	config Config
}

// NewManager opens the database described by config and applies the pool
// settings.
func NewManager(config Config) (*Manager, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch config.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(config.DSN())
	default:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	return &Manager{db: db, config: config}, nil
}

// RunMigrations applies pending SQL migrations from the configured directory.
func (m *Manager) RunMigrations() error {
	logger.Get().Infow("Running database migrations...", "dir", m.config.MigrationsDir, "driver", m.config.Driver)

	mig, err := NewMigrator(m.config)
	if err != nil {
		return err
	}
	defer CloseMigrator(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// NewMigrator builds a golang-migrate instance for config.
func NewMigrator(config Config) (*migrate.Migrate, error) {
	mig, err := migrate.New("file://"+config.MigrationsDir, config.MigrateURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// CloseMigrator releases the source and database handles of mig.
func CloseMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
