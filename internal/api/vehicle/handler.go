package vehicle

import (
	"net/http"

	"gooficina/internal/api/respond"
	"gooficina/internal/domain"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/usecase/vehicleusecase"
)

// Handler agrupa os endpoints de veículos.
type Handler struct {
	create       *vehicleusecase.CreateVehicle
	update       *vehicleusecase.UpdateVehicle
	remove       *vehicleusecase.DeleteVehicle
	findByID     *vehicleusecase.FindVehicleByID
	findByVin    *vehicleusecase.FindVehicleByVin
	findByPlate  *vehicleusecase.FindVehicleByLicensePlate
	findByClient *vehicleusecase.FindVehiclesByClientID
	list         *vehicleusecase.ListVehicles
	Logger       logger.Logger
}

func NewHandler(repo domain.VehicleRepository, log logger.Logger) *Handler {
	return &Handler{
		create:       vehicleusecase.NewCreateVehicle(repo, log),
		update:       vehicleusecase.NewUpdateVehicle(repo, log),
		remove:       vehicleusecase.NewDeleteVehicle(repo, log),
		findByID:     vehicleusecase.NewFindVehicleByID(repo),
		findByVin:    vehicleusecase.NewFindVehicleByVin(repo),
		findByPlate:  vehicleusecase.NewFindVehicleByLicensePlate(repo),
		findByClient: vehicleusecase.NewFindVehiclesByClientID(repo),
		list:         vehicleusecase.NewListVehicles(repo),
		Logger:       log,
	}
}

// CreateVehicleHandler lida com a requisição POST /v1/vehicles.
// @Summary Cadastra um veículo
// @Description Cria o veículo ou devolve o ID do veículo que já possui a mesma placa ou VIN.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body vehicleusecase.CreateVehicleInput true "Dados do veículo"
// @Success 201 {object} respond.IDResponse
// @Failure 400 {object} domain.ErrorResponse "Tipo, placa ou VIN inválido"
// @Failure 401 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /vehicles [post]
func (h *Handler) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var in vehicleusecase.CreateVehicleInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	id, err := h.create.Execute(r.Context(), in)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusCreated, respond.IDResponse{ID: id})
}

// ListVehiclesHandler lida com a requisição GET /v1/vehicles.
// @Summary Lista veículos
// @Tags vehicles
// @Produce json
// @Param limit query int false "Itens por página (padrão 15, máximo 100)"
// @Param page query int false "Página, a partir de 1"
// @Param search query string false "Busca em brand, model, licence_plate, vin e color"
// @Param sort_field query string false "Coluna de ordenação"
// @Param sort query string false "asc ou desc"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /vehicles [get]
func (h *Handler) ListVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	req, err := respond.ParseSearchRequest(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	res, err := h.list.Execute(r.Context(), req)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, res)
}

// GetVehicleHandler lida com a requisição GET /v1/vehicles/{id}.
// @Summary Busca um veículo pelo ID
// @Tags vehicles
// @Produce json
// @Param id path string true "ULID do veículo"
// @Success 200 {object} map[string]any
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /vehicles/{id} [get]
func (h *Handler) GetVehicleHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.findByID.Execute(r.Context(), r.PathValue("id"))
	h.single(w, r, data, err)
}

// GetVehicleByVinHandler lida com a requisição GET /v1/vehicles/vin/{vin}.
// @Summary Busca um veículo pelo VIN
// @Tags vehicles
// @Produce json
// @Param vin path string true "Chassi (17 caracteres)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /vehicles/vin/{vin} [get]
func (h *Handler) GetVehicleByVinHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.findByVin.Execute(r.Context(), r.PathValue("vin"))
	h.single(w, r, data, err)
}

// GetVehicleByPlateHandler lida com a requisição GET /v1/vehicles/plate/{plate}.
// @Summary Busca um veículo pela placa
// @Tags vehicles
// @Produce json
// @Param plate path string true "Placa antiga ou Mercosul"
// @Success 200 {object} map[string]any
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /vehicles/plate/{plate} [get]
func (h *Handler) GetVehicleByPlateHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.findByPlate.Execute(r.Context(), r.PathValue("plate"))
	h.single(w, r, data, err)
}

// ListVehiclesByClientHandler lida com a requisição GET /v1/vehicles/client/{clientId}.
// @Summary Lista os veículos de um cliente
// @Tags vehicles
// @Produce json
// @Param clientId path string true "ULID do cliente"
// @Success 200 {array} map[string]any
// @Failure 400 {object} domain.ErrorResponse
// @Router /vehicles/client/{clientId} [get]
func (h *Handler) ListVehiclesByClientHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.findByClient.Execute(r.Context(), r.PathValue("clientId"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, items)
}

// UpdateVehicleHandler lida com a requisição PUT /v1/vehicles/{id}.
// @Summary Atualiza um veículo
// @Tags vehicles
// @Accept json
// @Param id path string true "ULID do veículo"
// @Param vehicle body vehicleusecase.UpdateVehicleInput true "Campos a alterar"
// @Success 204
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Placa ou VIN de outro veículo"
// @Security BearerAuth
// @Router /vehicles/{id} [put]
func (h *Handler) UpdateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var in vehicleusecase.UpdateVehicleInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	in.ID = r.PathValue("id")

	if err := h.update.Execute(r.Context(), in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusNoContent, nil)
}

// DeleteVehicleHandler lida com a requisição DELETE /v1/vehicles/{id}.
// @Summary Remove um veículo
// @Tags vehicles
// @Param id path string true "ULID do veículo"
// @Success 204
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{id} [delete]
func (h *Handler) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.remove.Execute(r.Context(), r.PathValue("id")); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusNoContent, nil)
}

func (h *Handler) single(w http.ResponseWriter, r *http.Request, data map[string]any, err error) {
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, data)
}
