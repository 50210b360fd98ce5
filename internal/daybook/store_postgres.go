// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package daybook

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/daybook/internal/platform/database/schema"
	"github.com/taibuivan/daybook/internal/platform/dberr"
)

// PostgresRepository records runs in the daybook_runs table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) RecordRun(context context.Context, run *Run) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING %s
	`,
		schema.DaybookRun.Table, schema.DaybookRun.ID, schema.DaybookRun.StartDate, schema.DaybookRun.Weeks,
		schema.DaybookRun.Pages, schema.DaybookRun.SizeBytes, schema.DaybookRun.Fingerprint,
		schema.DaybookRun.CacheHit, schema.DaybookRun.Source, schema.DaybookRun.CreatedAt,
		schema.DaybookRun.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		run.ID, run.StartDate, run.Weeks, run.Pages, run.SizeBytes, run.Fingerprint, run.CacheHit, run.Source,
	).Scan(&run.CreatedAt)
	return dberr.Wrap(err, "record_run")
}

func (repository *PostgresRepository) ListRuns(context context.Context, limit, offset int) ([]*Run, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.DaybookRun.ID, schema.DaybookRun.StartDate, schema.DaybookRun.Weeks, schema.DaybookRun.Pages,
		schema.DaybookRun.SizeBytes, schema.DaybookRun.Fingerprint, schema.DaybookRun.CacheHit,
		schema.DaybookRun.Source, schema.DaybookRun.CreatedAt,
		schema.DaybookRun.Table, schema.DaybookRun.ID,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.DaybookRun.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_runs")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_runs")
	}
	defer rows.Close()

	runs := []*Run{}
	for rows.Next() {
		r := &Run{}
		if err := rows.Scan(&r.ID, &r.StartDate, &r.Weeks, &r.Pages, &r.SizeBytes, &r.Fingerprint, &r.CacheHit, &r.Source, &r.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_run")
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_runs")
	}

	return runs, total, nil
}
