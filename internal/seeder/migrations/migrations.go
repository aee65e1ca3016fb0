// Package migrations embeds the goose SQL migrations that bootstrap the
// seeder's PostgreSQL schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
