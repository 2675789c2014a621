package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an exact-match username lookup misses.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicate is returned when an insert violates the username or
	// email unique index.
	ErrDuplicate = errors.New("username or email already taken")
)

// isDuplicate reports whether err is a unique constraint violation from
// either backend. GORM translates most of these to ErrDuplicatedKey; the
// string checks cover driver errors that escape translation (SQLite's
// "UNIQUE constraint failed", PostgreSQL error code 23505).
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key")
}
