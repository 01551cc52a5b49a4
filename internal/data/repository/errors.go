// Package repository defines sentinel errors shared by the concrete
// repositories so services and handlers can distinguish failure kinds
// without parsing driver errors.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a reference-data
// uniqueness constraint, e.g. a second crew member with the same name.
var ErrDuplicate = errors.New("already exists")

// ErrSeatTaken is returned when a ticket insert loses the race for a
// (flight, row, seat) slot. The enclosing order transaction is rolled
// back; the caller must resubmit, nothing is retried.
var ErrSeatTaken = errors.New("seat is already taken")

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
