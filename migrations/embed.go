// Package migrations embeds the SQL migration files for goose, used by the
// server's AUTO_MIGRATE bootstrap and by integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
