// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package daybook_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/taibuivan/daybook/internal/daybook"
	"github.com/taibuivan/daybook/internal/layout"
)

const testSecret = "test-signing-secret"

// memoryRuns is an in-memory [daybook.RunRepository].
type memoryRuns struct {
	runs []*daybook.Run
	err  error
}

func (m *memoryRuns) RecordRun(_ context.Context, run *daybook.Run) error {
	if m.err != nil {
		return m.err
	}
	run.CreatedAt = time.Now()
	m.runs = append(m.runs, run)
	return nil
}

func (m *memoryRuns) ListRuns(_ context.Context, limit, offset int) ([]*daybook.Run, int, error) {
	if offset >= len(m.runs) {
		return []*daybook.Run{}, len(m.runs), nil
	}
	end := offset + limit
	if end > len(m.runs) {
		end = len(m.runs)
	}
	return m.runs[offset:end], len(m.runs), nil
}

// memoryCache is an in-memory [daybook.DocumentCache].
type memoryCache struct {
	documents map[string][]byte
	sets      int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{documents: map[string][]byte{}}
}

func (m *memoryCache) GetDocument(_ context.Context, fingerprint string) ([]byte, bool, error) {
	data, ok := m.documents[fingerprint]
	return data, ok, nil
}

func (m *memoryCache) SetDocument(_ context.Context, fingerprint string, data []byte) error {
	m.sets++
	m.documents[fingerprint] = data
	return nil
}

// brokenCache fails every call, like an unreachable Redis.
type brokenCache struct{}

func (brokenCache) GetDocument(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenCache) SetDocument(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSettings() daybook.Settings {
	return daybook.Settings{
		Layout:   layout.Default(),
		Defaults: daybook.Request{StartDate: "10.02.2025", Weeks: 4, Title: "Daybook"},
		BaseURL:  "http://localhost:8080",
		LinkTTL:  time.Hour,
	}
}

// newService wires a service with optional collaborators; nil disables them.
func newService(runs daybook.RunRepository, cache daybook.DocumentCache, links *daybook.LinkSigner) *daybook.Service {
	return daybook.NewService(testSettings(), runs, cache, links, discardLogger())
}
