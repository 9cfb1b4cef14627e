package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicate - signals that the error is a unique constraint violation.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == pgerrcode.UniqueViolation
}

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsTransient reports whether a failed statement can be retried as is:
// nothing reached the server, the connection timed out, or the server
// reported a serialization or deadlock conflict.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return pgerrcode.IsTransactionRollback(pgerr.Code) || pgerrcode.IsConnectionException(pgerr.Code)
	}
	return false
}
