// Package assets embeds the SQL migrations for the result ledger.
package assets

import "embed"

// Migrations holds sql/*.sql, applied in lexical order.
//
//go:embed sql/*.sql
var Migrations embed.FS
