package migrations

import "embed"

// FS holds one goose migration directory per dialect.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Dir returns the directory inside FS for a goose dialect.
func Dir(dialect string) string {
	if dialect == "sqlite3" {
		return "sqlite"
	}
	return "postgres"
}
