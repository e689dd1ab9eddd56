package database

import (
	"fmt"
	"net/url"
	"time"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// SQLitePath is the database file used when Driver is sqlite.
	SQLitePath string

	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration

	// MigrationsDir holds the golang-migrate SQL files.
	MigrationsDir string
	// AutoMigrate applies pending migrations when the API starts.
	AutoMigrate bool
}

// DSN returns the connection string understood by the gorm driver.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the database URL understood by golang-migrate.
func (c *Config) MigrateURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + c.SQLitePath
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// Validate checks that the driver is known.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	}
	return fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", c.Driver, DriverPostgres, DriverSQLite)
}
