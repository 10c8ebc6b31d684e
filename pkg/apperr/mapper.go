package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes with a dedicated client-facing meaning.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Response is the wire form of every error the API returns.
type Response struct {
	Status   int            `json:"-"`
	Code     string         `json:"code"`
	Category Category       `json:"category"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`

	// Unexpected marks failures that should be logged with full context.
	Unexpected bool `json:"-"`
}

// Map converts err into the response sent to the client. It is pure: the
// caller decides how to log.
func Map(err error) Response {
	var appErr *Error
	if errors.As(err, &appErr) {
		return fromKind(appErr.Kind, appErr.Message, appErr.Details)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			var details map[string]any
			if pgErr.ConstraintName != "" {
				details = map[string]any{"constraint": pgErr.ConstraintName}
			}
			return fromKind(KindDuplicateEntry, "Duplicate entry", details)
		case pgForeignKeyViolation:
			return fromKind(KindInvalidReference, "Invalid reference", nil)
		default:
			return fromKind(KindDatabase, "Database error", nil)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fromKind(KindDatabase, "Database error", nil)
	}

	return fromKind(KindInternal, "Internal server error", nil)
}

func fromKind(kind Kind, message string, details map[string]any) Response {
	status := kind.Status()
	if status >= 500 {
		// Never leak driver or storage detail on 5xx.
		details = nil
		switch kind {
		case KindDatabase:
			message = "Database error"
		case KindStorage:
			message = "Storage error"
		default:
			message = "Internal server error"
		}
	}

	return Response{
		Status:     status,
		Code:       kind.Code(),
		Category:   kind.Category(),
		Message:    message,
		Details:    details,
		Unexpected: status >= 500,
	}
}
