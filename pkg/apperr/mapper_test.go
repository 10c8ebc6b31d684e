package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCode     string
		wantCategory Category
		wantMessage  string
		unexpected   bool
	}{
		{
			name:         "not found",
			err:          NotFound(999999),
			wantStatus:   http.StatusNotFound,
			wantCode:     "MUSIC_HALL_NOT_FOUND",
			wantCategory: CategoryNotFound,
			wantMessage:  "Music hall 999999 not found",
		},
		{
			name:         "wrapped not found",
			err:          fmt.Errorf("get music hall: %w", NotFound(7)),
			wantStatus:   http.StatusNotFound,
			wantCode:     "MUSIC_HALL_NOT_FOUND",
			wantCategory: CategoryNotFound,
			wantMessage:  "Music hall 7 not found",
		},
		{
			name:         "list empty",
			err:          ListEmpty(),
			wantStatus:   http.StatusNotFound,
			wantCode:     "MUSIC_HALL_LIST_EMPTY",
			wantCategory: CategoryNotFound,
			wantMessage:  "No music halls found",
		},
		{
			name:         "no fields to update",
			err:          NoFieldsToUpdate(),
			wantStatus:   http.StatusBadRequest,
			wantCode:     "NO_FIELDS_TO_UPDATE",
			wantCategory: CategoryValidation,
			wantMessage:  "No fields to update",
		},
		{
			name:         "invalid update fields",
			err:          InvalidUpdateFields([]string{"not_a_real_field"}),
			wantStatus:   http.StatusBadRequest,
			wantCode:     "INVALID_UPDATE_FIELDS",
			wantCategory: CategoryValidation,
			wantMessage:  "Invalid fields for update: not_a_real_field",
		},
		{
			name:         "forbidden",
			err:          Forbidden(),
			wantStatus:   http.StatusForbidden,
			wantCode:     "FORBIDDEN",
			wantCategory: CategoryForbidden,
			wantMessage:  "Invalid or missing API key",
		},
		{
			name:         "unique violation",
			err:          fmt.Errorf("create music hall: %w", &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}),
			wantStatus:   http.StatusConflict,
			wantCode:     "DUPLICATE_ENTRY",
			wantCategory: CategoryConflict,
			wantMessage:  "Duplicate entry",
		},
		{
			name:         "foreign key violation",
			err:          &pgconn.PgError{Code: "23503"},
			wantStatus:   http.StatusBadRequest,
			wantCode:     "INVALID_REFERENCE",
			wantCategory: CategoryValidation,
			wantMessage:  "Invalid reference",
		},
		{
			name:         "other database error",
			err:          &pgconn.PgError{Code: "42P01", Message: `relation "music_halls" does not exist`},
			wantStatus:   http.StatusInternalServerError,
			wantCode:     "DATABASE_ERROR",
			wantCategory: CategoryInternal,
			wantMessage:  "Database error",
			unexpected:   true,
		},
		{
			name:         "storage error hides cause",
			err:          Storage(errors.New("AccessDenied: signature mismatch")),
			wantStatus:   http.StatusInternalServerError,
			wantCode:     "STORAGE_ERROR",
			wantCategory: CategoryInternal,
			wantMessage:  "Storage error",
			unexpected:   true,
		},
		{
			name:         "unknown error",
			err:          errors.New("boom"),
			wantStatus:   http.StatusInternalServerError,
			wantCode:     "INTERNAL_ERROR",
			wantCategory: CategoryInternal,
			wantMessage:  "Internal server error",
			unexpected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.unexpected, got.Unexpected)
		})
	}
}

func TestMapNeverLeaksInternalDetail(t *testing.T) {
	err := &pgconn.PgError{
		Code:    "XX000",
		Message: "SELECT secret FROM credentials",
		Detail:  "password=hunter2",
	}

	got := Map(err)

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.NotContains(t, got.Message, "SELECT")
	assert.NotContains(t, got.Message, "hunter2")
	assert.Nil(t, got.Details)
}

func TestMapKeepsDetails(t *testing.T) {
	got := Map(NotFound(42))
	assert.Equal(t, map[string]any{"id": int64(42)}, got.Details)

	got = Map(InvalidUpdateFields([]string{"a", "b"}))
	assert.Equal(t, map[string]any{"fields": []string{"a", "b"}}, got.Details)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("update: %w", NotFound(3))

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindListEmpty))
	assert.True(t, errors.Is(err, &Error{Kind: KindNotFound}))
	assert.False(t, IsKind(errors.New("plain"), KindInternal))
}
