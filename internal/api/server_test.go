// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/daybook/internal/api"
	"github.com/taibuivan/daybook/internal/daybook"
	"github.com/taibuivan/daybook/internal/layout"
	"github.com/taibuivan/daybook/internal/platform/config"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := daybook.NewService(daybook.Settings{
		Layout:   layout.Default(),
		Defaults: daybook.Request{StartDate: "10.02.2025", Weeks: 4, Title: "Daybook"},
	}, nil, nil, nil, logger)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, logger)
	return api.NewServer(ctx, &config.Config{ServerPort: "0", Environment: "development"}, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Daybook:   daybook.NewHandler(service),
	})
}

/*
TestServer_Routes checks the mounted routes and the fallback for unknown paths.
*/
func TestServer_Routes(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"liveness", "/health", http.StatusOK, ""},
		{"readiness_without_dependencies", "/ready", http.StatusOK, ""},
		{"booklet", "/api/v1/daybook/booklet?pages=4", http.StatusOK, ""},
		{"unknown_route", "/api/v1/daybook/unknown", http.StatusNotFound, "NOT_FOUND"},
		{"unknown_version", "/api/v2/daybook", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.status, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
			if tt.code == "" {
				return
			}

			var body struct {
				Code string `json:"code"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}
