package database

import "embed"

// migrationsFS embeds the versioned SQL migrations applied at startup.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS
