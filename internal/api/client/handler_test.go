package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooficina/internal/api/client"
	"gooficina/internal/api/respond"
	"gooficina/internal/domain"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/repository/memoryrepo"
)

const validCPF = "529.982.247-25"

func newHandler() *client.Handler {
	return client.NewHandler(memoryrepo.NewClientRepository(), logger.NewNopLogger())
}

func create(t *testing.T, h *client.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.CreateClientHandler(rec, httptest.NewRequest(http.MethodPost, "/v1/clients", strings.NewReader(body)))
	return rec
}

func TestCreateClientHandler(t *testing.T) {
	h := newHandler()

	rec := create(t, h, `{"name":"Maria Souza","email":"maria@exemplo.com","document":"`+validCPF+`","phone":"(11) 98765-4321"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body respond.IDResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, domain.IsValidID(body.ID))

	// mesmo documento devolve o mesmo ID
	again := create(t, h, `{"name":"Outra","email":"outra@exemplo.com","document":"52998224725"}`)
	var second respond.IDResponse
	require.NoError(t, json.NewDecoder(again.Body).Decode(&second))
	assert.Equal(t, body.ID, second.ID)
}

func TestCreateClientHandler_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"json malformado", `{"name":`},
		{"campo desconhecido", `{"name":"Maria","foo":1}`},
		{"documento inválido", `{"name":"Maria Souza","email":"m@e.com","document":"111.111.111-11"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := create(t, newHandler(), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body domain.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "VALIDATION_ERROR", body.Category)
		})
	}
}

func TestGetUpdateDeleteClient(t *testing.T) {
	h := newHandler()
	var created respond.IDResponse
	require.NoError(t, json.NewDecoder(create(t, h, `{"name":"Maria Souza","email":"maria@exemplo.com","document":"`+validCPF+`"}`).Body).Decode(&created))

	// GET por ID
	req := httptest.NewRequest(http.MethodGet, "/v1/clients/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	rec := httptest.NewRecorder()
	h.GetClientHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&data))
	assert.Equal(t, "Maria Souza", data["name"])

	// PUT
	req = httptest.NewRequest(http.MethodPut, "/v1/clients/"+created.ID, strings.NewReader(`{"name":"Maria S. Lima"}`))
	req.SetPathValue("id", created.ID)
	rec = httptest.NewRecorder()
	h.UpdateClientHandler(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// GET por documento
	req = httptest.NewRequest(http.MethodGet, "/v1/clients/document/52998224725", nil)
	req.SetPathValue("document", "52998224725")
	rec = httptest.NewRecorder()
	h.GetClientByDocumentHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&data))
	assert.Equal(t, "Maria S. Lima", data["name"])

	// DELETE e depois 404
	req = httptest.NewRequest(http.MethodDelete, "/v1/clients/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	rec = httptest.NewRecorder()
	h.DeleteClientHandler(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/clients/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	rec = httptest.NewRecorder()
	h.GetClientHandler(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetClientHandler_InvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/clients/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()

	newHandler().GetClientHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListClientsHandler(t *testing.T) {
	h := newHandler()
	create(t, h, `{"name":"Maria Souza","email":"maria@exemplo.com","document":"`+validCPF+`"}`)

	rec := httptest.NewRecorder()
	h.ListClientsHandler(rec, httptest.NewRequest(http.MethodGet, "/v1/clients?search=maria", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res domain.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 1, res.TotalItems)
	assert.Len(t, res.Items, 1)

	rec = httptest.NewRecorder()
	h.ListClientsHandler(rec, httptest.NewRequest(http.MethodGet, "/v1/clients?sort_field=password", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
