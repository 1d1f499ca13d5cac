package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateOrderNumber is returned by CreateOrder when the generated order
// number collides with an existing one.
var ErrDuplicateOrderNumber = errors.New("order number already exists")

// ErrQuantityOutOfRange is returned by UpsertItem when the merged line
// quantity no longer fits the quantity column.
var ErrQuantityOutOfRange = errors.New("cart line quantity out of range")

// PostgreSQL SQLSTATEs inspected by the repositories.
const (
	uniqueViolation   = "23505"
	numericOutOfRange = "22003"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation reports whether err is a unique constraint violation,
// optionally restricted to the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// isOutOfRange reports whether err is an integer overflow raised by PostgreSQL.
func isOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == numericOutOfRange
}
