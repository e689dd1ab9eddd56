package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"pembukuan/internal/config"
	"pembukuan/internal/database"
	"pembukuan/internal/logger"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: migrate <up|down|version|force> [N]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	m, err := database.NewMigrator(cfg.Database)
	if err != nil {
		return err
	}
	defer database.CloseMigrator(m)

	command := os.Args[1]

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logger.Get().Info("Migrations applied successfully")

	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil {
				return fmt.Errorf("invalid step count: %w", err)
			}
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logger.Get().Infof("Rolled back %d migration(s)", steps)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)

	case "force":
		if len(os.Args) < 3 {
			return fmt.Errorf("usage: migrate force <version>")
		}
		version, err := strconv.Atoi(os.Args[2])
		if err != nil {
			return fmt.Errorf("invalid version: %w", err)
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force failed: %w", err)
		}
		logger.Get().Infof("Forced version %d", version)

	default:
		return fmt.Errorf("unknown command: %s (use up, down, version, or force)", command)
	}

	return nil
}
