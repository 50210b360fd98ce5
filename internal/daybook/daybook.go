// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package daybook turns a start date and a week count into a printable,
foldable weekly planner.

It is the application layer above the pure core packages:

  - calendar resolves (week, day) pairs to dates.
  - layout plans the pages and draws them on a Surface.
  - booklet computes the duplex printing order.

The [Service] validates requests, drives a PDF surface, and optionally caches
documents in Redis and records every run in PostgreSQL. [Handler] exposes the
same operations over HTTP.
*/
package daybook

import (
	"time"

	"github.com/taibuivan/daybook/internal/booklet"
	"github.com/taibuivan/daybook/internal/layout"
)

// # Requests

// Request describes one daybook to render.
type Request struct {
	// StartDate is the reference date in dd.mm.yyyy. Week 1 is the week containing it.
	StartDate string `json:"start_date"`
	// Weeks is the number of weeks to lay out. Odd values are rounded up.
	Weeks int `json:"weeks"`
	// Title is embedded in the document metadata and the download file name.
	Title string `json:"title,omitempty"`
	// Source tags the run history entry ("cli", "api" or "link").
	Source string `json:"-"`
}

// # Results

// Document is a rendered daybook.
type Document struct {
	Bytes       []byte `json:"-"`
	Pages       int    `json:"pages"`
	FileName    string `json:"file_name"`
	Fingerprint string `json:"fingerprint"`
	CacheHit    bool   `json:"cache_hit"`
}

// ResolvedDate is the answer to a single date resolution.
type ResolvedDate struct {
	Date       string `json:"date"`
	Week       int    `json:"week"`
	Day        int    `json:"day"`
	Weekday    string `json:"weekday"`
	ISOWeekday int    `json:"iso_weekday"`
}

// Plan is the page plan of a daybook without drawing it.
type Plan struct {
	Weeks      int           `json:"weeks"`
	Pages      []layout.Page `json:"pages"`
	CellsTotal int           `json:"cells_total"`
}

// BookletOrder is the duplex printing order for a page total.
type BookletOrder struct {
	Pages  int             `json:"pages"`
	Order  []int           `json:"order"`
	Sheets []booklet.Sheet `json:"sheets"`
}

// Run is one entry of the render history.
type Run struct {
	ID          string    `json:"id"`
	StartDate   time.Time `json:"start_date"`
	Weeks       int       `json:"weeks"`
	Pages       int       `json:"pages"`
	SizeBytes   int       `json:"size_bytes"`
	Fingerprint string    `json:"fingerprint"`
	CacheHit    bool      `json:"cache_hit"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// Link is a signed, expiring download URL for a [Request].
type Link struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Run sources.
const (
	SourceCLI  = "cli"
	SourceAPI  = "api"
	SourceLink = "link"
)

// Field names used in validation errors.
const (
	FieldStartDate  = "start_date"
	FieldWeeks      = "weeks"
	FieldTitle      = "title"
	FieldWeek       = "week"
	FieldDay        = "day"
	FieldPages      = "pages"
	FieldTTLSeconds = "ttl_seconds"
	FieldToken      = "token"
)

// MaxTitleLength bounds the title embedded in document metadata.
const MaxTitleLength = 120
