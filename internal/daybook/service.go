// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package daybook

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/taibuivan/daybook/internal/booklet"
	"github.com/taibuivan/daybook/internal/calendar"
	"github.com/taibuivan/daybook/internal/layout"
	"github.com/taibuivan/daybook/internal/platform/apperr"
	"github.com/taibuivan/daybook/internal/platform/constants"
	"github.com/taibuivan/daybook/internal/platform/pdf"
	"github.com/taibuivan/daybook/internal/platform/validate"
	"github.com/taibuivan/daybook/pkg/pagination"
	"github.com/taibuivan/daybook/pkg/slice"
	"github.com/taibuivan/daybook/pkg/uuidv7"
)

// Settings are the values a [Service] is built with.
type Settings struct {
	// Layout is the page geometry. It must already be validated.
	Layout layout.Layout
	// Defaults fill the fields an HTTP caller leaves out.
	Defaults Request
	// BaseURL prefixes signed download links.
	BaseURL string
	// LinkTTL is the lifetime of a link when the caller does not ask for one.
	LinkTTL time.Duration
}

// Service renders daybooks.
//
// runs, cache and links are optional: a nil value disables history, caching
// or signed links respectively.
type Service struct {
	settings Settings
	runs     RunRepository
	cache    DocumentCache
	links    *LinkSigner
	logger   *slog.Logger
}

func NewService(settings Settings, runs RunRepository, cache DocumentCache, links *LinkSigner, logger *slog.Logger) *Service {
	return &Service{
		settings: settings,
		runs:     runs,
		cache:    cache,
		links:    links,
		logger:   logger,
	}
}

// Defaults returns the request used for omitted fields.
func (service *Service) Defaults() Request {
	return service.settings.Defaults
}

// # Rendering

// Render produces the PDF for req.
//
// A cached document with the same fingerprint is returned as is. Cache and
// history failures are logged and never fail the render.
func (service *Service) Render(context context.Context, req Request) (*Document, error) {

	// 1. Validate and normalize
	ref, err := service.validateRequest(req)
	if err != nil {
		return nil, err
	}
	weeks := layout.NormalizeWeeks(req.Weeks)

	document := &Document{
		Pages:       layout.PageCount(weeks),
		FileName:    FileName(req.Title, ref),
		Fingerprint: Fingerprint(ref, weeks, req.Title, service.settings.Layout),
	}

	// 2. Serve from cache when possible
	if data, ok := service.lookup(context, document.Fingerprint); ok {
		document.Bytes = data
		document.CacheHit = true
	} else {
		data, err := service.draw(ref, weeks, req.Title)
		if err != nil {
			return nil, err
		}
		document.Bytes = data
		service.store(context, document.Fingerprint, data)
	}

	// 3. Record history
	service.record(context, req, ref, weeks, document)

	service.logger.InfoContext(context, "daybook_rendered",
		slog.String("start_date", calendar.Format(ref)),
		slog.Int("weeks", weeks),
		slog.Int("pages", document.Pages),
		slog.Int("size_bytes", len(document.Bytes)),
		slog.Bool("cache_hit", document.CacheHit),
	)

	return document, nil
}

// WriteFile renders req and writes it to path.
//
// The file is written to a temporary sibling first and renamed into place,
// so path never holds a partial document.
func (service *Service) WriteFile(context context.Context, req Request, path string) (*Document, error) {
	document, err := service.Render(context, req)
	if err != nil {
		return nil, err
	}

	if err := writeAtomic(path, document.Bytes); err != nil {
		return nil, apperr.IOFailure("write output file", err)
	}

	service.logger.InfoContext(context, "daybook_written",
		slog.String("path", path),
		slog.Int("size_bytes", len(document.Bytes)),
	)
	return document, nil
}

// # Lookups

// ResolveDate returns the date of (week, day) counted from start.
func (service *Service) ResolveDate(start string, week, day int) (*ResolvedDate, error) {
	ref, err := calendar.ParseDate(strings.TrimSpace(start))
	if err != nil {
		return nil, err
	}

	date, err := calendar.Resolve(ref, week, day)
	if err != nil {
		return nil, err
	}

	return &ResolvedDate{
		Date:       calendar.Format(date),
		Week:       week,
		Day:        day,
		Weekday:    calendar.WeekdayName(day),
		ISOWeekday: calendar.ISOWeekday(date),
	}, nil
}

// Plan returns the page plan for weeks without drawing it.
func (service *Service) Plan(weeks int) (*Plan, error) {
	if err := checkWeeks(weeks); err != nil {
		return nil, err
	}

	normalized := layout.NormalizeWeeks(weeks)
	pages := layout.BuildPlan(normalized, service.settings.Layout)

	cells := slice.Reduce(pages, 0, func(total int, page layout.Page) int {
		return total + len(page.Cells)
	})

	return &Plan{Weeks: normalized, Pages: pages, CellsTotal: cells}, nil
}

// BookletOrder returns the duplex printing order for pages.
func (service *Service) BookletOrder(pages int) (*BookletOrder, error) {
	if err := (&validate.Validator{}).Range(FieldPages, pages, 0, constants.MaxBookletPages).Err(); err != nil {
		return nil, err
	}

	order, err := booklet.Sequence(pages)
	if err != nil {
		return nil, err
	}

	sheets, err := booklet.Sheets(pages)
	if err != nil {
		return nil, err
	}

	return &BookletOrder{Pages: pages, Order: order, Sheets: sheets}, nil
}

// BookletOrderForWeeks returns the printing order of a daybook of weeks,
// padded with blank pages to whole sheets.
func (service *Service) BookletOrderForWeeks(weeks int) (*BookletOrder, error) {
	if err := checkWeeks(weeks); err != nil {
		return nil, err
	}
	return service.BookletOrder(booklet.Padded(layout.PageCount(weeks)))
}

// RecentRuns lists the render history, newest first.
func (service *Service) RecentRuns(context context.Context, params pagination.Params) ([]*Run, int, error) {
	if service.runs == nil {
		return nil, 0, apperr.ServiceUnavailable(apperr.CodeHistoryDisabled, "Render history is not configured")
	}
	return service.runs.ListRuns(context, params.Limit, params.Offset())
}

// # Signed Links

// IssueLink signs req into a download link valid for ttlSeconds.
// Zero uses the configured default lifetime.
func (service *Service) IssueLink(context context.Context, req Request, ttlSeconds int) (*Link, error) {
	if service.links == nil {
		return nil, apperr.ServiceUnavailable(apperr.CodeLinksDisabled, "Signed download links are not configured")
	}

	// Bounds are checked in seconds so the conversion below cannot overflow.
	if err := (&validate.Validator{}).
		Custom(FieldTTLSeconds, ttlSeconds < 0, "Must not be negative").
		Custom(FieldTTLSeconds, ttlSeconds > int(constants.MaxLinkTTL/time.Second), "Link lifetime is too long").
		Err(); err != nil {
		return nil, err
	}

	timeToLive := time.Duration(ttlSeconds) * time.Second
	if timeToLive == 0 {
		timeToLive = service.settings.LinkTTL
	}

	// Links must never carry a request that fails later.
	if _, err := service.validateRequest(req); err != nil {
		return nil, err
	}

	token, expiresAt, err := service.links.Sign(req, timeToLive)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.InfoContext(context, "link_issued",
		slog.String("start_date", req.StartDate),
		slog.Int("weeks", req.Weeks),
		slog.Time("expires_at", expiresAt),
	)

	return &Link{
		Token:     token,
		URL:       strings.TrimRight(service.settings.BaseURL, "/") + "/api/v1/daybook/links/" + token,
		ExpiresAt: expiresAt,
	}, nil
}

// RenderFromLink verifies token and renders the request it carries.
func (service *Service) RenderFromLink(context context.Context, token string) (*Document, error) {
	if service.links == nil {
		return nil, apperr.ServiceUnavailable(apperr.CodeLinksDisabled, "Signed download links are not configured")
	}

	req, err := service.links.Verify(token)
	if err != nil {
		return nil, err
	}

	req.Source = SourceLink
	return service.Render(context, req)
}

// # Helpers

func (service *Service) validateRequest(req Request) (time.Time, error) {
	validator := &validate.Validator{}
	validator.Required(FieldStartDate, req.StartDate).MaxLen(FieldTitle, req.Title, MaxTitleLength)
	if err := validator.Err(); err != nil {
		return time.Time{}, err
	}

	ref, err := calendar.ParseDate(strings.TrimSpace(req.StartDate))
	if err != nil {
		return time.Time{}, err
	}

	if err := checkWeeks(req.Weeks); err != nil {
		return time.Time{}, err
	}

	return ref, nil
}

func checkWeeks(weeks int) error {
	return (&validate.Validator{}).Range(FieldWeeks, weeks, 0, constants.MaxWeeks).Err()
}

// draw renders a fresh document.
func (service *Service) draw(ref time.Time, weeks int, title string) ([]byte, error) {
	l := service.settings.Layout

	surface := pdf.NewSurface(pdf.Options{
		Width:   l.PageWidth,
		Height:  l.PageHeight,
		Title:   title,
		Creator: constants.AppName + "/" + constants.AppVersion,
	})

	if _, err := layout.Render(surface, layout.BuildPlan(weeks, l), ref, l); err != nil {
		return nil, err
	}
	if err := surface.Err(); err != nil {
		return nil, apperr.Internal(err)
	}

	var buffer bytes.Buffer
	if err := surface.Save(&buffer); err != nil {
		return nil, apperr.Internal(err)
	}
	return buffer.Bytes(), nil
}

func (service *Service) lookup(context context.Context, fingerprint string) ([]byte, bool) {
	if service.cache == nil {
		return nil, false
	}

	data, ok, err := service.cache.GetDocument(context, fingerprint)
	if err != nil {
		service.logger.WarnContext(context, "cache_lookup_failed", slog.String("error", err.Error()))
		return nil, false
	}
	return data, ok
}

func (service *Service) store(context context.Context, fingerprint string, data []byte) {
	if service.cache == nil {
		return
	}

	if err := service.cache.SetDocument(context, fingerprint, data); err != nil {
		service.logger.WarnContext(context, "cache_store_failed", slog.String("error", err.Error()))
	}
}

func (service *Service) record(context context.Context, req Request, ref time.Time, weeks int, document *Document) {
	if service.runs == nil {
		return
	}

	source := req.Source
	if source == "" {
		source = SourceAPI
	}

	run := &Run{
		ID:          uuidv7.New(),
		StartDate:   ref,
		Weeks:       weeks,
		Pages:       document.Pages,
		SizeBytes:   len(document.Bytes),
		Fingerprint: document.Fingerprint,
		CacheHit:    document.CacheHit,
		Source:      source,
	}

	if err := service.runs.RecordRun(context, run); err != nil {
		service.logger.WarnContext(context, "run_record_failed", slog.String("error", err.Error()))
	}
}

// writeAtomic writes data to a temporary file next to path and renames it into place.
func writeAtomic(path string, data []byte) (err error) {
	temporary, err := os.CreateTemp(filepath.Dir(path), ".daybook-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(temporary.Name())
		}
	}()

	if _, err = temporary.Write(data); err != nil {
		_ = temporary.Close()
		return err
	}
	if err = temporary.Sync(); err != nil {
		_ = temporary.Close()
		return err
	}
	if err = temporary.Close(); err != nil {
		return err
	}
	if err = os.Chmod(temporary.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(temporary.Name(), path)
}
