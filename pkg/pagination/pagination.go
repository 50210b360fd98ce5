// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination pages through list endpoints such as the render history.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the page size when the caller does not ask for one.
	DefaultLimit = 20
	// MaxLimit caps the page size; larger requests are clamped to it.
	MaxLimit = 100
)

// Params selects one page of a list. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of items before the selected page.
func (p Params) Offset() int {
	return max(p.Page-1, 0) * p.Limit
}

// Meta describes the page returned to the caller.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// Meta builds the metadata of the selected page for a list of total items.
func (p Params) Meta(total int) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}

	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
	}
}

// FromQuery reads "page" and "limit" from query.
//
// Missing or malformed values fall back to the first page and [DefaultLimit];
// a limit above [MaxLimit] is clamped to it.
func FromQuery(query url.Values) Params {
	page := positive(query.Get("page"), 1)
	limit := min(positive(query.Get("limit"), DefaultLimit), MaxLimit)
	return Params{Page: page, Limit: limit}
}

func positive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
