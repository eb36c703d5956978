// Package main implements the entry point for the adboard server,
// a small HTTP API managing users and their classified-ad postings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/krongr/adboard/internal/config"
	"github.com/krongr/adboard/internal/platform/logger"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (default: ./config.yaml)")
	migrateCmd := flag.String("migrate", "", "run a migration command and exit (up|down|status|version)")
	migrationsDir := flag.String("migrations-dir", "migrations", "directory containing goose migration files")
	flag.Parse()

	if err := run(*configPath, *migrateCmd, *migrationsDir); err != nil {
		log.Fatalf("adboard: %v", err)
	}
}

// run loads configuration, sets up logging and the database, and either
// executes a migration command or starts the HTTP server.
func run(configPath, migrateCmd, migrationsDir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDatabase(db, appLogger)
		return runMigrations(db, migrateCmd, migrationsDir, appLogger)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		closeDatabase(db, appLogger)
		return err
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
