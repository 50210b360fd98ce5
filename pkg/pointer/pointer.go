// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer helps with optional JSON fields decoded as pointers.
package pointer

// Fallback dereferences p, or returns fallback when p is nil.
//
// It tells an omitted field apart from an explicit zero, e.g. "weeks": 0.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
