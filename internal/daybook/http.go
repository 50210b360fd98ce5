// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package daybook

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/daybook/internal/platform/constants"
	requestutil "github.com/taibuivan/daybook/internal/platform/request"
	"github.com/taibuivan/daybook/internal/platform/respond"
	"github.com/taibuivan/daybook/pkg/pagination"
	"github.com/taibuivan/daybook/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Documents
	router.Get("/", handler.download)
	router.Post("/links", handler.createLink)
	router.Get("/links/{token}", handler.downloadLink)

	// Lookups
	router.Get("/dates", handler.resolveDate)
	router.Get("/plan", handler.plan)
	router.Get("/booklet", handler.booklet)

	// History
	router.Get("/runs", handler.listRuns)
}

// linkInput is the body of POST /links.
type linkInput struct {
	StartDate  string `json:"start_date"`
	Weeks      *int   `json:"weeks"`
	Title      string `json:"title"`
	TTLSeconds int    `json:"ttl_seconds"`
}

func (handler *Handler) download(writer http.ResponseWriter, request *http.Request) {
	defaults := handler.service.Defaults()

	weeks, err := requestutil.QueryInt(request, "weeks", defaults.Weeks)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.Render(request.Context(), Request{
		StartDate: requestutil.QueryString(request, "start", defaults.StartDate),
		Weeks:     weeks,
		Title:     requestutil.QueryString(request, "title", defaults.Title),
		Source:    SourceAPI,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeDocument(writer, document)
}

func (handler *Handler) createLink(writer http.ResponseWriter, request *http.Request) {
	var input linkInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	defaults := handler.service.Defaults()
	req := Request{StartDate: input.StartDate, Weeks: pointer.Fallback(input.Weeks, defaults.Weeks), Title: input.Title}
	if req.StartDate == "" {
		req.StartDate = defaults.StartDate
	}

	link, err := handler.service.IssueLink(request.Context(), req, input.TTLSeconds)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, link)
}

func (handler *Handler) downloadLink(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.service.RenderFromLink(request.Context(), requestutil.Param(request, FieldToken))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeDocument(writer, document)
}

func (handler *Handler) resolveDate(writer http.ResponseWriter, request *http.Request) {
	week, err := requestutil.RequiredQueryInt(request, FieldWeek)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	day, err := requestutil.RequiredQueryInt(request, FieldDay)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	start := requestutil.QueryString(request, "start", handler.service.Defaults().StartDate)
	resolved, err := handler.service.ResolveDate(start, week, day)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, resolved)
}

func (handler *Handler) plan(writer http.ResponseWriter, request *http.Request) {
	weeks, err := requestutil.QueryInt(request, FieldWeeks, handler.service.Defaults().Weeks)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	plan, err := handler.service.Plan(weeks)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, plan)
}

func (handler *Handler) booklet(writer http.ResponseWriter, request *http.Request) {
	var (
		order *BookletOrder
		err   error
	)

	// ?pages= takes a raw page total; otherwise the order is derived from ?weeks=.
	if requestutil.QueryString(request, FieldPages, "") != "" {
		var pages int
		if pages, err = requestutil.QueryInt(request, FieldPages, 0); err == nil {
			order, err = handler.service.BookletOrder(pages)
		}
	} else {
		var weeks int
		if weeks, err = requestutil.QueryInt(request, FieldWeeks, handler.service.Defaults().Weeks); err == nil {
			order, err = handler.service.BookletOrderForWeeks(weeks)
		}
	}

	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, order)
}

func (handler *Handler) listRuns(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromQuery(request.URL.Query())

	runs, total, err := handler.service.RecentRuns(request.Context(), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, runs, page.Meta(total))
}

func writeDocument(writer http.ResponseWriter, document *Document) {
	cacheStatus := "MISS"
	if document.CacheHit {
		cacheStatus = "HIT"
	}

	writer.Header().Set(constants.HeaderPages, strconv.Itoa(document.Pages))
	writer.Header().Set(constants.HeaderCache, cacheStatus)
	respond.Attachment(writer, constants.ContentTypePDF, document.FileName, document.Bytes)
}
