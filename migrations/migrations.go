// Package migrations embeds the schema applied at startup when
// POSTGRES_AUTO_MIGRATE is enabled.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
