package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pembukuan/internal/database"
	"pembukuan/internal/logger"

	"github.com/joho/godotenv"
)

// Config holds application configuration. It is built once at start-up and
// handed to whatever needs it; nothing in the application reads it from a
// package variable.
type Config struct {
	// Server
	Env  string
	Port string

	Database database.Config
	Ledger   LedgerConfig
}

// LedgerConfig holds the ledger-specific settings.
type LedgerConfig struct {
	// OwnerScoping enables the owner dimension: owner filtering on queries and
	// the Owner column on reports.
	OwnerScoping bool
	// CurrencyPrefix is printed before every amount in reports.
	CurrencyPrefix string
	// Locale is the BCP 47 tag used for thousands grouping in reports.
	Locale string
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Warnw(".env file not found, using environment only", "error", err)
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		Database: database.Config{
			Driver:        strings.ToLower(getEnv("DB_DRIVER", database.DriverPostgres)),
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          getEnv("DB_USER", "pembukuan"),
			Password:      getEnv("DB_PASSWORD", "pembukuan"),
			DBName:        getEnv("DB_NAME", "pembukuan"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			SQLitePath:    getEnv("DB_SQLITE_PATH", "pembukuan.db"),
			MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "migrations"),
		},

		Ledger: LedgerConfig{
			CurrencyPrefix: getEnv("LEDGER_CURRENCY_PREFIX", "Rp"),
			Locale:         getEnv("LEDGER_LOCALE", "id"),
		},
	}

	var err error
	if config.Database.MaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", 10); err != nil {
		return nil, err
	}
	if config.Database.MaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 100); err != nil {
		return nil, err
	}
	if config.Database.ConnMaxLifetime, err = getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour); err != nil {
		return nil, err
	}
	if config.Database.AutoMigrate, err = getEnvBool("DB_AUTO_MIGRATE", true); err != nil {
		return nil, err
	}
	if config.Ledger.OwnerScoping, err = getEnvBool("LEDGER_OWNER_SCOPING", true); err != nil {
		return nil, err
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return d, nil
}
