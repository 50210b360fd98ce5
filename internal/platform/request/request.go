// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body and query decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/daybook/internal/platform/apperr"
	"github.com/taibuivan/daybook/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
QueryString returns the trimmed query parameter, or fallback when absent.
*/
func QueryString(request *http.Request, name, fallback string) string {
	value := strings.TrimSpace(request.URL.Query().Get(name))
	if value == "" {
		return fallback
	}
	return value
}

/*
QueryInt parses an integer query parameter.

Unlike pagination parameters, a malformed value is an error rather than a
silent default: rendering the wrong number of weeks is worse than failing.

Returns:
  - int: the parsed value, or fallback when the parameter is absent
  - error: apperr.ValidationError naming the field if the value is not an integer
*/
func QueryInt(request *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validate.RequiredError(name, "Must be an integer")
	}
	return value, nil
}

/*
RequiredQueryInt is [QueryInt] for parameters without a default.
*/
func RequiredQueryInt(request *http.Request, name string) (int, error) {
	if strings.TrimSpace(request.URL.Query().Get(name)) == "" {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{Field: name, Message: "This field is required"})
	}
	return QueryInt(request, name, 0)
}
