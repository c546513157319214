package vehicle_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooficina/internal/api/respond"
	"gooficina/internal/api/vehicle"
	"gooficina/internal/domain"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/repository/memoryrepo"
)

func newHandler() *vehicle.Handler {
	return vehicle.NewHandler(memoryrepo.NewVehicleRepository(), logger.NewNopLogger())
}

func create(t *testing.T, h *vehicle.Handler, body string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.CreateVehicleHandler(rec, httptest.NewRequest(http.MethodPost, "/v1/vehicles", strings.NewReader(body)))
	var res respond.IDResponse
	if rec.Code == http.StatusCreated {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res.ID
}

func get(h http.HandlerFunc, path, key, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.SetPathValue(key, value)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestVehicleHandlers(t *testing.T) {
	h := newHandler()
	owner := domain.NewID()

	rec, id := create(t, h, `{"brand":"Volkswagen","model":"Gol","year":2015,"type":"car","client_id":"`+owner+`",`+
		`"licence_plate":"abc-1234","vin":"9BWZZZ377VT004251","mileage":80000}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, domain.IsValidID(id))

	// mesma placa, outro formato
	_, again := create(t, h, `{"brand":"VW","model":"Gol","year":2015,"type":"car","client_id":"`+owner+`","licence_plate":"ABC1234"}`)
	assert.Equal(t, id, again)

	assert.Equal(t, http.StatusOK, get(h.GetVehicleHandler, "/v1/vehicles/"+id, "id", id).Code)
	assert.Equal(t, http.StatusOK, get(h.GetVehicleByVinHandler, "/v1/vehicles/vin/x", "vin", "9BWZZZ377VT004251").Code)
	assert.Equal(t, http.StatusOK, get(h.GetVehicleByPlateHandler, "/v1/vehicles/plate/x", "plate", "ABC-1234").Code)
	assert.Equal(t, http.StatusNotFound, get(h.GetVehicleByPlateHandler, "/v1/vehicles/plate/x", "plate", "XYZ9Z99").Code)

	byClient := get(h.ListVehiclesByClientHandler, "/v1/vehicles/client/x", "clientId", owner)
	require.Equal(t, http.StatusOK, byClient.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(byClient.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "ABC1234", items[0]["licence_plate"])

	empty := get(h.ListVehiclesByClientHandler, "/v1/vehicles/client/x", "clientId", domain.NewID())
	assert.JSONEq(t, "[]", empty.Body.String())

	req := httptest.NewRequest(http.MethodPut, "/v1/vehicles/"+id, strings.NewReader(`{"color":"Prata","mileage":81000}`))
	req.SetPathValue("id", id)
	upd := httptest.NewRecorder()
	h.UpdateVehicleHandler(upd, req)
	assert.Equal(t, http.StatusNoContent, upd.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(get(h.GetVehicleHandler, "/v1/vehicles/"+id, "id", id).Body.Bytes(), &data))
	assert.Equal(t, "Prata", data["color"])

	req = httptest.NewRequest(http.MethodDelete, "/v1/vehicles/"+id, nil)
	req.SetPathValue("id", id)
	del := httptest.NewRecorder()
	h.DeleteVehicleHandler(del, req)
	assert.Equal(t, http.StatusNoContent, del.Code)
	assert.Equal(t, http.StatusNotFound, get(h.GetVehicleHandler, "/v1/vehicles/"+id, "id", id).Code)
}

func TestCreateVehicleHandler_InvalidType(t *testing.T) {
	rec, _ := create(t, newHandler(), `{"brand":"Fiat","model":"Uno","year":2000,"type":"hovercraft","client_id":"`+domain.NewID()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListVehiclesHandler_Filter(t *testing.T) {
	h := newHandler()
	owner := domain.NewID()
	create(t, h, `{"brand":"Scania","model":"R450","year":2019,"type":"truck","client_id":"`+owner+`"}`)
	create(t, h, `{"brand":"Fiat","model":"Argo","year":2021,"type":"car","client_id":"`+domain.NewID()+`"}`)

	rec := httptest.NewRecorder()
	h.ListVehiclesHandler(rec, httptest.NewRequest(http.MethodGet, "/v1/vehicles?filter[client_id]="+owner, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res domain.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.TotalItems)
	assert.Equal(t, "R450", res.Items[0]["model"])
}
