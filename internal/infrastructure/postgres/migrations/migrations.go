// Package migrations embute os scripts SQL de criação do schema,
// aplicados via goose (cmd/migrate).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
