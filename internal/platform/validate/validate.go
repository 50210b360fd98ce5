// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used in the service layer, never in handlers or the
// drawing code. It ensures that rendering only operates on semantically
// valid requests.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/daybook/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError

	// outOfRange is the first failed Range rule; ranges counts them all.
	outOfRange *apperr.AppError
	ranges     int
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
//
// When every failed rule of the chain is a Range rule, [Validator.Err]
// reports INVALID_RANGE instead of VALIDATION_ERROR.
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		failure := apperr.InvalidRange(field, value, min, max)
		v.add(field, failure.Message)
		if v.outOfRange == nil {
			v.outOfRange = failure
		}
		v.ranges++
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("ttl_seconds", ttl > max, "Link lifetime is too long")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] if any rules failed, or nil if all rules
// passed. Failures from Range rules alone yield INVALID_RANGE; any other mix
// yields VALIDATION_ERROR. Both carry the per-field details.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	if v.ranges == len(v.errs) {
		v.outOfRange.Details = v.errs
		return v.outOfRange
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
