package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "gooficina/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validation", apperror.NewKindValidationError("vin", "bad vin"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", apperror.NewResourceNotFoundError("car", "ID x"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", apperror.NewConflictError("dup"), http.StatusConflict, "CONFLICT"},
		{"unauthorized", apperror.NewUnauthorizedError("no token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", apperror.NewForbiddenError("role"), http.StatusForbidden, "FORBIDDEN"},
		{"internal", apperror.NewDBError("falha", errors.New("conn reset")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"wrapped", fmt.Errorf("camada: %w", apperror.NewResourceNotFoundError("client", "ID y")), http.StatusNotFound, "NOT_FOUND"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "UNKNOWN_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, category, _ := apperror.MapToHTTPStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
		})
	}
}

func TestInvalidEnumError(t *testing.T) {
	err := apperror.NewInvalidEnumError("transmission", "cvt", []string{"manual", "automatic"})

	assert.Equal(t, "transmission", err.Kind)
	assert.Contains(t, err.Error(), "cvt")
	assert.Contains(t, err.Error(), "manual, automatic")
	assert.True(t, apperror.IsValidation(err))
}

func TestInspectionHelpers(t *testing.T) {
	notFound := fmt.Errorf("use case: %w", apperror.NewResourceNotFoundError("vehicle", "ID z"))
	assert.True(t, apperror.IsNotFound(notFound))
	assert.False(t, apperror.IsConflict(notFound))

	cause := errors.New("duplicate key")
	conflict := apperror.NewConflictErrorWithCause("placa duplicada", cause)
	assert.True(t, apperror.IsConflict(conflict))
	assert.ErrorIs(t, conflict, cause)

	internal := apperror.NewDBError("falha ao inserir", cause)
	assert.ErrorIs(t, internal, cause)
	assert.Contains(t, internal.Error(), "duplicate key")
}
