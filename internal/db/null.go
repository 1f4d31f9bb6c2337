// Package db holds small helpers around database/sql for scanning the
// nullable columns a calibre metadata.db produces.
package db

import "database/sql"

// NullStringValue returns the string value or empty string if not valid.
func NullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}

// NullInt64Value returns the int64 value or 0 if not valid.
func NullInt64Value(n sql.NullInt64) int64 {
	if !n.Valid {
		return 0
	}
	return n.Int64
}

// NullBoolValue returns the bool value or false if not valid.
func NullBoolValue(n sql.NullBool) bool {
	return n.Valid && n.Bool
}
