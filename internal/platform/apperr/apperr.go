// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Daybook.

It provides a rich error type that bridges the gap between low-level domain,
rendering and storage errors and the surfaces that report them (CLI exit
messages and HTTP responses).

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Taxonomy: Date parsing, range, page count and I/O failures each carry their own code.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent reporting.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Codes

const (
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInvalidDateFormat = "INVALID_DATE_FORMAT"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeInvalidPageCount  = "INVALID_PAGE_COUNT"
	CodeIOFailure         = "IO_FAILURE"
	CodeLinksDisabled     = "LINKS_DISABLED"
	CodeHistoryDisabled   = "HISTORY_DISABLED"
	CodeInternal          = "INTERNAL_ERROR"
)

// AppError is the canonical error type for Daybook.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., file system paths).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "INVALID_RANGE").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Run") // Returns "Run not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// InvalidDateFormat creates a 400 [AppError] for a date that does not match dd.mm.yyyy.
func InvalidDateFormat(value string, cause error) *AppError {
	return &AppError{
		Code:       CodeInvalidDateFormat,
		Message:    fmt.Sprintf("Invalid date %q: expected dd.mm.yyyy", value),
		HTTPStatus: http.StatusBadRequest,
		Cause:      cause,
	}
}

// InvalidRange creates a 400 [AppError] for an integer argument outside its domain.
func InvalidRange(field string, value, min, max int) *AppError {
	msg := fmt.Sprintf("%s=%d is out of range [%d, %d]", field, value, min, max)
	if max <= 0 {
		msg = fmt.Sprintf("%s=%d must be at least %d", field, value, min)
	}
	return &AppError{
		Code:       CodeInvalidRange,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidPageCount creates a 400 [AppError] for a page total that cannot be paired into sheets.
func InvalidPageCount(pages int) *AppError {
	return &AppError{
		Code:       CodeInvalidPageCount,
		Message:    fmt.Sprintf("Page count %d must be a positive multiple of 4", pages),
		HTTPStatus: http.StatusBadRequest,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IOFailure creates a 500 [AppError] for an output artifact that could not be written.
func IOFailure(action string, cause error) *AppError {
	return &AppError{
		Code:       CodeIOFailure,
		Message:    "Failed to " + action,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// ServiceUnavailable creates a 503 [AppError] for a feature that is not configured.
func ServiceUnavailable(code, msg string) *AppError {
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
