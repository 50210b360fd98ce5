// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package daybook_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/daybook/internal/daybook"
	"github.com/taibuivan/daybook/pkg/pagination"
)

// envelope mirrors the JSON envelopes written by the respond package.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  pagination.Meta `json:"meta"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

func newRouter(service *daybook.Service) http.Handler {
	router := chi.NewRouter()
	daybook.NewHandler(service).RegisterRoutes(router)
	return router
}

func serve(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestHandler_Download checks the PDF attachment contract.
*/
func TestHandler_Download(t *testing.T) {
	router := newRouter(newService(nil, newMemoryCache(), nil))

	first := serve(t, router, http.MethodGet, "/?start=10.02.2025&weeks=4&title=Team", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "application/pdf", first.Header().Get("Content-Type"))
	assert.Equal(t, "2", first.Header().Get("X-Daybook-Pages"))
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Contains(t, first.Header().Get("Content-Disposition"), `filename="team-2025-02-10.pdf"`)
	assert.True(t, strings.HasPrefix(first.Body.String(), "%PDF-"))

	second := serve(t, router, http.MethodGet, "/?start=10.02.2025&weeks=4&title=Team", "")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
}

/*
TestHandler_Download_Defaults checks that omitted parameters fall back to configured defaults.
*/
func TestHandler_Download_Defaults(t *testing.T) {
	router := newRouter(newService(nil, nil, nil))

	recorder := serve(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "2", recorder.Header().Get("X-Daybook-Pages"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "daybook-2025-02-10.pdf")
}

/*
TestHandler_Errors checks status codes and error codes of rejected requests.
*/
func TestHandler_Errors(t *testing.T) {
	router := newRouter(newService(nil, nil, nil))

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"weeks_not_integer", "/?weeks=many", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad_date", "/?start=2025-02-10", http.StatusBadRequest, "INVALID_DATE_FORMAT"},
		{"negative_weeks", "/?weeks=-2", http.StatusBadRequest, "INVALID_RANGE"},
		{"day_out_of_range", "/dates?week=1&day=8", http.StatusBadRequest, "INVALID_RANGE"},
		{"week_missing", "/dates?day=1", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"booklet_not_multiple", "/booklet?pages=6", http.StatusBadRequest, "INVALID_PAGE_COUNT"},
		{"history_disabled", "/runs", http.StatusServiceUnavailable, "HISTORY_DISABLED"},
		{"links_disabled", "/links/abc", http.StatusServiceUnavailable, "LINKS_DISABLED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, router, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, tt.code, decode(t, recorder).Code)
		})
	}
}

/*
TestHandler_Lookups checks the JSON lookup endpoints.
*/
func TestHandler_Lookups(t *testing.T) {
	router := newRouter(newService(nil, nil, nil))

	t.Run("dates", func(t *testing.T) {
		recorder := serve(t, router, http.MethodGet, "/dates?start=10.02.2025&week=2&day=3", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var resolved daybook.ResolvedDate
		require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &resolved))
		assert.Equal(t, "19.02.2025", resolved.Date)
		assert.Equal(t, "Wednesday", resolved.Weekday)
	})

	t.Run("plan", func(t *testing.T) {
		recorder := serve(t, router, http.MethodGet, "/plan?weeks=7", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var plan daybook.Plan
		require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &plan))
		assert.Equal(t, 8, plan.Weeks)
		require.Len(t, plan.Pages, 4)
		assert.Equal(t, 8, plan.Pages[0].TopWeek)
		assert.Equal(t, 1, plan.Pages[0].BottomWeek)
	})

	t.Run("booklet_pages", func(t *testing.T) {
		recorder := serve(t, router, http.MethodGet, "/booklet?pages=8", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var order daybook.BookletOrder
		require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &order))
		assert.Equal(t, []int{1, 8, 2, 7, 3, 6, 4, 5}, order.Order)
	})

	t.Run("booklet_weeks", func(t *testing.T) {
		recorder := serve(t, router, http.MethodGet, "/booklet?weeks=52", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var order daybook.BookletOrder
		require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &order))
		assert.Equal(t, 28, order.Pages)
	})
}

/*
TestHandler_Links issues a link and downloads through it.
*/
func TestHandler_Links(t *testing.T) {
	router := newRouter(newService(nil, nil, daybook.NewLinkSigner(testSecret, "daybook.app")))

	created := serve(t, router, http.MethodPost, "/links", `{"start_date":"10.02.2025","weeks":6,"title":"Shared","ttl_seconds":600}`)
	require.Equal(t, http.StatusCreated, created.Code)

	var link daybook.Link
	require.NoError(t, json.Unmarshal(decode(t, created).Data, &link))
	require.NotEmpty(t, link.Token)

	downloaded := serve(t, router, http.MethodGet, "/links/"+link.Token, "")
	require.Equal(t, http.StatusOK, downloaded.Code)
	assert.Equal(t, "3", downloaded.Header().Get("X-Daybook-Pages"))
	assert.Contains(t, downloaded.Header().Get("Content-Disposition"), "shared-2025-02-10.pdf")

	invalid := serve(t, router, http.MethodGet, "/links/"+link.Token+"x", "")
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)

	malformed := serve(t, router, http.MethodPost, "/links", `{"weeks":`)
	assert.Equal(t, http.StatusBadRequest, malformed.Code)

	tooLong := serve(t, router, http.MethodPost, "/links", `{"ttl_seconds":18446747673}`)
	assert.Equal(t, http.StatusBadRequest, tooLong.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, tooLong).Code)
}

/*
TestHandler_Runs checks the paginated history envelope.
*/
func TestHandler_Runs(t *testing.T) {
	runs := &memoryRuns{}
	router := newRouter(newService(runs, nil, nil))

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/?weeks=2", "").Code)
	}

	recorder := serve(t, router, http.MethodGet, "/runs?page=1&limit=2", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decode(t, recorder)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
	assert.True(t, body.Meta.HasNext)

	var listed []daybook.Run
	require.NoError(t, json.Unmarshal(body.Data, &listed))
	assert.Len(t, listed, 2)
	assert.Equal(t, daybook.SourceAPI, listed[0].Source)
}
