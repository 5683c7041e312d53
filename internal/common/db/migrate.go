package db

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	"ride-hail/internal/common/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies pending goose migrations stored at the root of migrationsFS.
func (p *Postgres) RunMigrations(ctx context.Context, migrationsFS fs.FS) error {
	start := time.Now()
	logger.Info("db_migrations_start", "Running database migrations...", "", "")

	sqlDB, err := sql.Open("pgx", p.dsn)
	if err != nil {
		logger.Error("db_migrations_open_failed", "Failed to open migration connection", "", "", err.Error())
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to configure goose: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if err := goose.UpContext(runCtx, sqlDB, "."); err != nil {
		logger.Error("db_migrations_failed", "Failed to apply migrations", "", "", err.Error())
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("db_migrations_done", fmt.Sprintf("Migrations applied successfully in %v", time.Since(start)), "", "")
	return nil
}
