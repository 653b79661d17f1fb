// Package migrations embeds the schema files so binaries can prepare a
// fresh store without shipping loose SQL alongside them.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// SQLiteUp returns the sqlite up migrations in order.
func SQLiteUp() ([]string, error) {
	return readUp("sqlite")
}

// PostgresUp returns the postgres up migrations in order.
func PostgresUp() ([]string, error) {
	return readUp("postgres")
}

func readUp(dialect string) ([]string, error) {
	entries, err := fs.Glob(files, dialect+"/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s migrations: %w", dialect, err)
	}
	sort.Strings(entries)

	scripts := make([]string, 0, len(entries))
	for _, entry := range entries {
		data, err := files.ReadFile(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", entry, err)
		}
		scripts = append(scripts, string(data))
	}
	return scripts, nil
}
