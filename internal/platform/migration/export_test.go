// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

// Pgx5DSN exposes the scheme rewrite to tests.
var Pgx5DSN = pgx5DSN
