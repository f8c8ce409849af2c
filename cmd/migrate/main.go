package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/m04kA/barbershop-booking/internal/config"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

func main() {
	var (
		configPath     = flag.String("config", "config.toml", "path to config file")
		migrationsPath = flag.String("migrations", "migrations", "path to migrations directory")
		command        = flag.String("command", "up", "command to run (up, down, version)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if !cfg.Database.Enabled {
		log.Fatal("Database is disabled in %s, nothing to migrate", *configPath)
	}

	absMigrations, err := filepath.Abs(*migrationsPath)
	if err != nil {
		log.Fatal("Invalid migrations path: %v", err)
	}
	if _, err := os.Stat(absMigrations); os.IsNotExist(err) {
		log.Fatal("Migrations directory does not exist: %s", absMigrations)
	}

	m, err := migrate.New("file://"+absMigrations, cfg.Database.URL())
	if err != nil {
		log.Fatal("Failed to create migrate instance: %v", err)
	}
	defer m.Close()

	switch *command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Successfully ran migrations up")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Failed to rollback migrations: %v", err)
		}
		log.Info("Successfully ran migrations down")

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal("Failed to get version: %v", err)
		}
		log.Info("Current version: %d, dirty: %v", version, dirty)

	default:
		log.Fatal("Unknown command: %s", *command)
	}
}
