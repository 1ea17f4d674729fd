package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

var (
	// ErrUniqueViolation marks an insert or update that collides with a unique index.
	ErrUniqueViolation = errors.New("unique violation")
	// ErrForeignKeyViolation marks a missing parent on write or a remaining child on delete.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// ConstraintError names the constraint a statement violated.
type ConstraintError struct {
	Kind       error
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v on %s", e.Kind, e.Constraint)
}

func (e *ConstraintError) Is(target error) bool {
	return target == e.Kind
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ConstraintName returns the violated constraint, or "" when err is not a ConstraintError.
func ConstraintName(err error) string {
	var constraintErr *ConstraintError
	if errors.As(err, &constraintErr) {
		return constraintErr.Constraint
	}
	return ""
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return &ConstraintError{Kind: ErrUniqueViolation, Constraint: pgErr.ConstraintName, Err: err}
	case pgerrcode.ForeignKeyViolation:
		return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: pgErr.ConstraintName, Err: err}
	default:
		return err
	}
}

// execAffectingOne runs a write that must hit exactly one row.
func execAffectingOne(ctx context.Context, db DBTX, query string, args ...any) error {
	cmd, err := db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func exists(ctx context.Context, db DBTX, query string, id int64) (bool, error) {
	var found bool
	if err := db.QueryRow(ctx, query, id).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
