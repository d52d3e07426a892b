package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	apperrors "productivity-tracker/internal/errors"
)

// ledgerError maps a driver error to an AppError. Statement deadlines become
// timeouts so callers can tell a slow ledger from a broken one
func ledgerError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(operation, err)
	}
	return apperrors.NewDatabaseError(operation, err)
}

// expectRow fails with NotFound when a statement touched no rows
func expectRow(result sql.Result, what string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return ledgerError("count affected rows", err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError(what, strconv.FormatInt(id, 10))
	}
	return nil
}

func insertRow(ctx context.Context, db *sql.DB, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, ledgerError("insert reminder", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, ledgerError("read reminder id", err)
	}
	return id, nil
}

func updateRow(ctx context.Context, db *sql.DB, query string, what string, id int64, args ...interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return ledgerError("update "+what, err)
	}
	return expectRow(result, what, id)
}

func queryOne[T any](ctx context.Context, db *sql.DB, query string, scan func(Scanner) (*T, error), what string, id int64) (*T, error) {
	v, err := scan(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(what, strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, ledgerError("scan "+what, err)
	}
	return v, nil
}

func queryAll[T any](ctx context.Context, db *sql.DB, query string, scan func(Rows) ([]*T, error), args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ledgerError("query reminders", err)
	}
	defer rows.Close()

	out, err := scan(rows)
	if err != nil {
		return nil, ledgerError("scan reminders", err)
	}
	return out, nil
}
