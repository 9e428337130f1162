// Package schemas provides the embedded SQL migrations of the Quizzle database.
package schemas

import "embed"

// Migrations holds golang-migrate style files: NNNNNN_name.up.sql / NNNNNN_name.down.sql.
//
//go:embed migrations/*.sql
var Migrations embed.FS
