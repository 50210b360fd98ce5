// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package daybook

import "context"

// RunRepository persists the render history.
type RunRepository interface {
	RecordRun(context context.Context, run *Run) error
	ListRuns(context context.Context, limit, offset int) ([]*Run, int, error)
}

// DocumentCache stores rendered documents by fingerprint.
//
// A miss is reported as (nil, false, nil); errors are reserved for an
// unreachable backend.
type DocumentCache interface {
	GetDocument(context context.Context, fingerprint string) ([]byte, bool, error)
	SetDocument(context context.Context, fingerprint string, data []byte) error
}
