// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration applies the render history schema with golang-migrate.
//
// Both the API server and the CLI call [RunUp] before they open the history
// pool, so daybook_runs exists before the first run is recorded.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp applies all pending UP migrations found in migrationsPath to dsn.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+migrationsPath, pgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceError, dbError := migrator.Close()
		if err := errors.Join(sourceError, dbError); err != nil {
			logger.Warn("migration_close_failed", slog.Any("error", err))
		}
	}()
	migrator.Log = &migrateLogger{logger: logger}

	version, isDirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to read version: %w", err)
	}
	if isDirty {
		return fmt.Errorf("migration: schema is dirty at version %d", version)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("migration_up_to_date", slog.Uint64("version", uint64(version)))
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	applied, _, _ := migrator.Version()
	logger.Info("migration_applied",
		slog.Uint64("from_version", uint64(version)),
		slog.Uint64("to_version", uint64(applied)),
	)
	return nil
}

// pgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// the golang-migrate pgx/v5 driver registers. Other DSNs pass through.
func pgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger forwards golang-migrate's log lines to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return false
}
