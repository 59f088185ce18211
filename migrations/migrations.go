// Package migrations embeds the SQL schema files so the migrate command and
// the API binary can apply them without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
