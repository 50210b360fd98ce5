// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr turns PostgreSQL failures into [apperr.AppError] values.
//
// Callers see INTERNAL_ERROR only. The cause keeps the failed action and the
// SQLSTATE so the server log tells a missing migration apart from an outage.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/daybook/internal/platform/apperr"
)

// undefinedTable is the SQLSTATE of a query against a table that does not exist.
const undefinedTable = "42P01"

// ErrNotMigrated marks a failure caused by a schema that was never migrated.
var ErrNotMigrated = errors.New("history schema is missing, run migrations")

// Wrap classifies err and wraps it as an internal [apperr.AppError] tagged with action.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) {
		return apperr.Internal(fmt.Errorf("%s: %w", action, err))
	}

	if pgError.Code == undefinedTable {
		return apperr.Internal(fmt.Errorf("%s: %w: %w", action, ErrNotMigrated, err))
	}
	return apperr.Internal(fmt.Errorf("%s: sqlstate %s: %w", action, pgError.Code, err))
}
