package db

import (
	"database/sql"
	"testing"
)

func TestNullStringValue(t *testing.T) {
	if got := NullStringValue(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Errorf("valid: got %q, want %q", got, "x")
	}
	if got := NullStringValue(sql.NullString{String: "x", Valid: false}); got != "" {
		t.Errorf("invalid: got %q, want empty", got)
	}
}

func TestNullInt64Value(t *testing.T) {
	if got := NullInt64Value(sql.NullInt64{Int64: 42, Valid: true}); got != 42 {
		t.Errorf("valid: got %d, want 42", got)
	}
	if got := NullInt64Value(sql.NullInt64{Int64: 42, Valid: false}); got != 0 {
		t.Errorf("invalid: got %d, want 0", got)
	}
}

func TestNullBoolValue(t *testing.T) {
	if !NullBoolValue(sql.NullBool{Bool: true, Valid: true}) {
		t.Error("valid true: got false")
	}
	if NullBoolValue(sql.NullBool{Bool: true, Valid: false}) {
		t.Error("invalid: got true")
	}
}
