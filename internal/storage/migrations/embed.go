// Package migrations embeds the SQL schema migrations applied by the sqlite
// package at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
