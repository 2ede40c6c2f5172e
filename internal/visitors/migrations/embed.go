package migrations

import "embed"

// FS contains embedded SQLite migrations for visitor metrics.
//
//go:embed *.sql
var FS embed.FS
