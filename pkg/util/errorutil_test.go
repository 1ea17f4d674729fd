package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"unauthorized", NewUnauthorized("token expired"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("nope"), CodeForbidden, http.StatusForbidden},
		{"validation", NewValidationError("bad", nil), CodeValidationFailed, http.StatusBadRequest},
		{"not found", NewNotFound("No circuit with this id exists"), CodeNotFound, http.StatusNotFound},
		{"conflict", NewConflict("still linked", nil), CodeConflict, http.StatusConflict},
		{"fiber not found", fiber.ErrNotFound, CodeNotFound, http.StatusNotFound},
		{"fiber bad request", fiber.NewError(http.StatusBadRequest, "invalid payload"), CodeValidationFailed, http.StatusBadRequest},
		{"fiber method not allowed", fiber.ErrMethodNotAllowed, "METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed},
		{"unclassified", errors.New("connection reset"), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
		})
	}
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
	assert.NoError(t, MapError(nil))
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("pq: password authentication failed")
	got := ToDomainError(cause)

	assert.NotContains(t, got.Message, "password authentication")
	assert.ErrorIs(t, got, cause)
	assert.NotEmpty(t, got.Stacktrace())
}

func TestWrappedDomainErrorKeepsKind(t *testing.T) {
	err := errors.Join(errors.New("context"), NewForbidden("you are not allowed to view this part of the application"))

	assert.True(t, Is(err, CodeForbidden))
	assert.False(t, Is(err, CodeUnauthorized))
	assert.Equal(t, http.StatusForbidden, ToDomainError(err).HTTPStatus)
}
