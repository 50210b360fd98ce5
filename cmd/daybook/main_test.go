// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the command from an empty directory without history configured.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATABASE_URL", "")
	return dir
}

/*
TestRun_WritesDocument renders a small daybook to the requested path.
*/
func TestRun_WritesDocument(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "planner.pdf")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-start", "10.02.2025", "-weeks", "4", "-out", out}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "2 pages")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

/*
TestRun_Order prints the booklet order without writing a file.
*/
func TestRun_Order(t *testing.T) {
	dir := isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-weeks", "16", "-order"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Print order (8 pages): 1,8,2,7,3,6,4,5")
	assert.Contains(t, stdout.String(), "Sheet 2: front 3,6  back 4,5")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

/*
TestRun_HistoryUnavailable verifies that a failed history migration only warns.
*/
func TestRun_HistoryUnavailable(t *testing.T) {
	dir := isolate(t)
	t.Setenv("DATABASE_URL", "postgres://daybook@localhost:1/daybook")
	t.Setenv("MIGRATION_PATH", filepath.Join(dir, "missing-migrations"))
	out := filepath.Join(dir, "planner.pdf")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-weeks", "2", "-out", out}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "history_unavailable")
	assert.Contains(t, stderr.String(), "migration")
	assert.FileExists(t, out)
}

/*
TestRun_Errors checks exit codes and error reporting.
*/
func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"bad_date", []string{"-start", "2025-02-10"}, 1, "INVALID_DATE_FORMAT"},
		{"negative_weeks", []string{"-weeks", "-1"}, 1, "INVALID_RANGE"},
		{"unknown_flag", []string{"-colour"}, 2, "flag provided but not defined"},
		{"missing_directory", []string{"-weeks", "2", "-out", filepath.Join("missing", "x.pdf")}, 1, "IO_FAILURE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}
