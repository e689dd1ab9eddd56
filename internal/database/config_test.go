package database

import (
	"strings"
	"testing"
)

func TestConfig_DSN(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		c := Config{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", DBName: "ledger", SSLMode: "disable"}
		want := "host=db port=5432 user=u password=p dbname=ledger sslmode=disable"
		if got := c.DSN(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		c := Config{Driver: DriverSQLite, SQLitePath: "data/ledger.db"}
		if got := c.DSN(); got != "data/ledger.db" {
			t.Errorf("expected sqlite path, got %q", got)
		}
	})
}

func TestConfig_MigrateURL(t *testing.T) {
	t.Run("postgres escapes credentials", func(t *testing.T) {
		c := Config{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p@ss", DBName: "ledger", SSLMode: "disable"}
		got := c.MigrateURL()
		if !strings.HasPrefix(got, "postgres://u:p%40ss@db:5432/ledger") {
			t.Errorf("unexpected url %q", got)
		}
		if !strings.HasSuffix(got, "sslmode=disable") {
			t.Errorf("expected sslmode in %q", got)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		c := Config{Driver: DriverSQLite, SQLitePath: "ledger.db"}
		if got := c.MigrateURL(); got != "sqlite3://ledger.db" {
			t.Errorf("unexpected url %q", got)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	if err := (&Config{Driver: "mysql"}).Validate(); err == nil {
		t.Error("expected error for unsupported driver")
	}
	if err := (&Config{Driver: DriverSQLite}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
