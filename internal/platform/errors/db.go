package errors

// Postgres and ClickHouse helpers mapping driver errors to ErrorCode

import (
	stderrs "errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes a catalog read can hit
const (
	pgErrUniqueViolation           = "23505"
	pgErrInvalidTextRepresentation = "22P02"
	pgErrUndefinedTable            = "42P01"
	pgErrUndefinedColumn           = "42703"
	pgErrInsufficientPrivilege     = "42501"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrQueryCanceled        = "57014"
	pgErrAdminShutdown        = "57P01"
	pgErrCannotConnectNow     = "57P03"
)

// ClickHouse server exception codes a catalog read can hit
const (
	chErrUnknownIdentifier = 47
	chErrUnknownTable      = 60
	chErrUnknownDatabase   = 81
	chErrAccessDenied      = 497
	chErrTimeoutExceeded   = 159
	chErrTooManySimQueries = 202
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// DBErrorCode maps a Postgres error to an ErrorCode with an ok flag
// !ok means err wasn't a PgError; caller may fall back to generic handling
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}

	switch pgErr.Code {
	case pgErrUniqueViolation:
		return ErrorCodeDuplicateKey, true

	// the configured table or column is wrong
	case pgErrUndefinedTable, pgErrUndefinedColumn, pgErrInvalidTextRepresentation:
		return ErrorCodeInvalidArgument, true

	case pgErrInsufficientPrivilege:
		return ErrorCodeForbidden, true

	case pgErrSerializationFailure, pgErrDeadlockDetected:
		return ErrorCodeDB, true

	case pgErrQueryCanceled, pgErrAdminShutdown, pgErrCannotConnectNow:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// CHErrorCode maps a ClickHouse server exception to an ErrorCode with an ok flag
func CHErrorCode(err error) (ErrorCode, bool) {
	var ex *clickhouse.Exception
	if !stderrs.As(err, &ex) {
		return ErrorCodeUnknown, false
	}
	switch ex.Code {
	case chErrUnknownIdentifier, chErrUnknownTable, chErrUnknownDatabase:
		return ErrorCodeInvalidArgument, true
	case chErrAccessDenied:
		return ErrorCodeForbidden, true
	case chErrTimeoutExceeded, chErrTooManySimQueries:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromDBf wraps a driver error with a mapped ErrorCode and formatted message
// errors from neither driver are classed as ErrorCodeDB; nil stays nil
func FromDBf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, a...)
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	if code, ok := CHErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
