package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooficina/internal/api/respond"
	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
)

func TestParseSearchRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/v1/cars?limit=500&page=2&search=gol&sort_field=year&sort=DESC&filter[type]=sedan&filter[client_id]=abc&other=1", nil)

	sr, err := respond.ParseSearchRequest(req)

	require.NoError(t, err)
	assert.Equal(t, domain.MaxSearchLimit, sr.Limit)
	assert.Equal(t, 2, sr.Page)
	assert.Equal(t, "gol", sr.Search)
	assert.Equal(t, "year", sr.SortField)
	assert.True(t, sr.Descending())
	assert.Equal(t, map[string]string{"type": "sedan", "client_id": "abc"}, sr.Filters)
}

func TestParseSearchRequest_Defaults(t *testing.T) {
	sr, err := respond.ParseSearchRequest(httptest.NewRequest(http.MethodGet, "/v1/clients", nil))

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSearchLimit, sr.Limit)
	assert.Equal(t, 1, sr.Page)
	assert.Empty(t, sr.Filters)
}

func TestParseSearchRequest_BadNumber(t *testing.T) {
	_, err := respond.ParseSearchRequest(httptest.NewRequest(http.MethodGet, "/v1/clients?page=dois", nil))

	assert.True(t, apperror.IsValidation(err))
}

func TestError_WritesErrorResponse(t *testing.T) {
	tests := []struct {
		err      error
		status   int
		category string
	}{
		{apperror.NewResourceNotFoundError("car", "ID x"), 404, "NOT_FOUND"},
		{apperror.NewKindValidationError("vin", "inválido"), 400, "VALIDATION_ERROR"},
		{apperror.NewConflictError("placa"), 409, "CONFLICT"},
		{errors.New("sem categoria"), 500, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		respond.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), logger.NewNopLogger(), tt.err)

		var body domain.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, tt.status, body.Code)
		assert.Equal(t, tt.category, body.Category)
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))

	err := respond.Decode(req, &dst)

	assert.True(t, apperror.IsValidation(err))
}
