// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names used by the SQL stores.
package schema

// DaybookRunTable represents the 'daybook_runs' table
type DaybookRunTable struct {
	Table       string
	ID          string
	StartDate   string
	Weeks       string
	Pages       string
	SizeBytes   string
	Fingerprint string
	CacheHit    string
	Source      string
	CreatedAt   string
}

// DaybookRun is the schema definition for daybook_runs
var DaybookRun = DaybookRunTable{
	Table:       "daybook_runs",
	ID:          "id",
	StartDate:   "start_date",
	Weeks:       "weeks",
	Pages:       "pages",
	SizeBytes:   "size_bytes",
	Fingerprint: "fingerprint",
	CacheHit:    "cache_hit",
	Source:      "source",
	CreatedAt:   "created_at",
}

func (t DaybookRunTable) Columns() []string {
	return []string{t.ID, t.StartDate, t.Weeks, t.Pages, t.SizeBytes, t.Fingerprint, t.CacheHit, t.Source, t.CreatedAt}
}
