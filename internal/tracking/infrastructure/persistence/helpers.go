// Package persistence contains the SQLite repositories for the tracking
// bounded context and the read-side analytics sources. Timestamps are stored
// as RFC3339 UTC text in SQLite and as timestamptz in PostgreSQL.
package persistence

import "database/sql"

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
