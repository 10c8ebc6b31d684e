// Package apperr defines the closed set of failures the API reports and the
// single function that turns any error into an HTTP error response.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindListEmpty
	KindNoFieldsToUpdate
	KindInvalidUpdateFields
	KindDuplicateEntry
	KindInvalidReference
	KindDatabase
	KindForbidden
	KindValidation
	KindPictureNotFound
	KindStorage
	KindRouteNotFound
	KindMethodNotAllowed
)

type Category string

const (
	CategoryNotFound   Category = "NOT_FOUND"
	CategoryValidation Category = "VALIDATION"
	CategoryConflict   Category = "CONFLICT"
	CategoryInternal   Category = "INTERNAL"
	CategoryForbidden  Category = "FORBIDDEN"
)

type kindInfo struct {
	code     string
	category Category
	status   int
}

var kinds = map[Kind]kindInfo{
	KindInternal:            {"INTERNAL_ERROR", CategoryInternal, http.StatusInternalServerError},
	KindNotFound:            {"MUSIC_HALL_NOT_FOUND", CategoryNotFound, http.StatusNotFound},
	KindListEmpty:           {"MUSIC_HALL_LIST_EMPTY", CategoryNotFound, http.StatusNotFound},
	KindNoFieldsToUpdate:    {"NO_FIELDS_TO_UPDATE", CategoryValidation, http.StatusBadRequest},
	KindInvalidUpdateFields: {"INVALID_UPDATE_FIELDS", CategoryValidation, http.StatusBadRequest},
	KindDuplicateEntry:      {"DUPLICATE_ENTRY", CategoryConflict, http.StatusConflict},
	KindInvalidReference:    {"INVALID_REFERENCE", CategoryValidation, http.StatusBadRequest},
	KindDatabase:            {"DATABASE_ERROR", CategoryInternal, http.StatusInternalServerError},
	KindForbidden:           {"FORBIDDEN", CategoryForbidden, http.StatusForbidden},
	KindValidation:          {"VALIDATION_ERROR", CategoryValidation, http.StatusBadRequest},
	KindPictureNotFound:     {"PICTURE_NOT_FOUND", CategoryNotFound, http.StatusNotFound},
	KindStorage:             {"STORAGE_ERROR", CategoryInternal, http.StatusInternalServerError},
	KindRouteNotFound:       {"ROUTE_NOT_FOUND", CategoryNotFound, http.StatusNotFound},
	KindMethodNotAllowed:    {"METHOD_NOT_ALLOWED", CategoryValidation, http.StatusMethodNotAllowed},
}

func (k Kind) info() kindInfo {
	if info, ok := kinds[k]; ok {
		return info
	}
	return kinds[KindInternal]
}

// Code is the stable machine-readable identifier clients switch on.
func (k Kind) Code() string { return k.info().code }

func (k Kind) Category() Category { return k.info().category }

func (k Kind) Status() int { return k.info().status }

func (k Kind) String() string { return k.Code() }

// Error is a domain failure. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind.Code(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Code(), e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, &Error{Kind: KindNotFound}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return KindInternal, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func NotFound(id int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Music hall %d not found", id),
		Details: map[string]any{"id": id},
	}
}

func ListEmpty() *Error {
	return &Error{Kind: KindListEmpty, Message: "No music halls found"}
}

func NoFieldsToUpdate() *Error {
	return &Error{Kind: KindNoFieldsToUpdate, Message: "No fields to update"}
}

func InvalidUpdateFields(fields []string) *Error {
	return &Error{
		Kind:    KindInvalidUpdateFields,
		Message: "Invalid fields for update: " + strings.Join(fields, ", "),
		Details: map[string]any{"fields": fields},
	}
}

func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "Invalid or missing API key"}
}

// Validation carries per-field messages keyed by the client-facing field name.
func Validation(message string, fields map[string]string) *Error {
	e := &Error{Kind: KindValidation, Message: message}
	if len(fields) > 0 {
		details := make(map[string]any, len(fields))
		for k, v := range fields {
			details[k] = v
		}
		e.Details = details
	}
	return e
}

func PictureNotFound(key string) *Error {
	return &Error{
		Kind:    KindPictureNotFound,
		Message: "Picture not found",
		Details: map[string]any{"key": key},
	}
}

func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "Storage error", Err: err}
}

func RouteNotFound(path string) *Error {
	return &Error{
		Kind:    KindRouteNotFound,
		Message: "Route not found",
		Details: map[string]any{"path": path},
	}
}

func MethodNotAllowed(method string) *Error {
	return &Error{
		Kind:    KindMethodNotAllowed,
		Message: "Method not allowed",
		Details: map[string]any{"method": method},
	}
}
