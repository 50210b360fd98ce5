// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package daybook

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/taibuivan/daybook/internal/calendar"
	"github.com/taibuivan/daybook/internal/layout"
	"github.com/taibuivan/daybook/pkg/slug"
)

// fingerprintInput is every value that changes the rendered bytes.
type fingerprintInput struct {
	StartDate string        `json:"start_date"`
	Weeks     int           `json:"weeks"`
	Title     string        `json:"title"`
	Layout    layout.Layout `json:"layout"`
}

// Fingerprint identifies a document by the inputs that produce it.
//
// weeks must already be normalized, so that 51 and 52 weeks share a fingerprint.
func Fingerprint(ref time.Time, weeks int, title string, l layout.Layout) string {
	// Marshalling a struct of plain values cannot fail.
	payload, _ := json.Marshal(fingerprintInput{
		StartDate: calendar.Format(ref),
		Weeks:     weeks,
		Title:     title,
		Layout:    l,
	})

	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// FileName returns the download name of a daybook, e.g. "team-planner-2025-02-10.pdf".
func FileName(title string, ref time.Time) string {
	base := slug.From(title)
	if base == "" {
		base = "daybook"
	}
	return base + "-" + ref.Format("2006-01-02") + ".pdf"
}
