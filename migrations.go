// Package sattva holds assets shared by the binaries, currently the SQL migrations.
package sattva

import "embed"

// Migrations are the goose migrations of the PostgreSQL schema and the demo fixtures.
//
//go:embed migrations/*.sql
var Migrations embed.FS
