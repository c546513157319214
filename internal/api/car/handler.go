package car

import (
	"net/http"

	"gooficina/internal/api/respond"
	"gooficina/internal/domain"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/usecase/carusecase"
)

// Handler agrupa os endpoints de carros.
type Handler struct {
	create       *carusecase.CreateCar
	update       *carusecase.UpdateCar
	remove       *carusecase.DeleteCar
	findByID     *carusecase.FindCarByID
	findByVin    *carusecase.FindCarByVin
	findByPlate  *carusecase.FindCarByLicensePlate
	findByClient *carusecase.FindCarsByClientID
	list         *carusecase.ListCars
	Logger       logger.Logger
}

func NewHandler(repo domain.CarRepository, log logger.Logger) *Handler {
	return &Handler{
		create:       carusecase.NewCreateCar(repo, log),
		update:       carusecase.NewUpdateCar(repo, log),
		remove:       carusecase.NewDeleteCar(repo, log),
		findByID:     carusecase.NewFindCarByID(repo),
		findByVin:    carusecase.NewFindCarByVin(repo),
		findByPlate:  carusecase.NewFindCarByLicensePlate(repo),
		findByClient: carusecase.NewFindCarsByClientID(repo),
		list:         carusecase.NewListCars(repo),
		Logger:       log,
	}
}

// CreateCarHandler lida com a requisição POST /v1/cars.
// @Summary Cadastra um carro
// @Description Cria o carro ou devolve o ID do carro que já possui a mesma placa ou VIN.
// @Tags cars
// @Accept json
// @Produce json
// @Param car body carusecase.CreateCarInput true "Dados do carro"
// @Success 201 {object} respond.IDResponse
// @Failure 400 {object} domain.ErrorResponse "Tipo, placa ou VIN inválido"
// @Failure 401 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /cars [post]
func (h *Handler) CreateCarHandler(w http.ResponseWriter, r *http.Request) {
	var in carusecase.CreateCarInput
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

// ListCarsHandler lida com a requisição GET /v1/cars.
// @Summary Lista carros
// @Tags cars
// @Produce json
// @Param limit query int false "Itens por página (padrão 15, máximo 100)"
// @Param page query int false "Página, a partir de 1"
// @Param search query string false "Busca em brand, model, licence_plate, vin e color"
// @Param sort_field query string false "Coluna de ordenação"
// @Param sort query string false "asc ou desc"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /cars [get]
func (h *Handler) ListCarsHandler(w http.ResponseWriter, r *http.Request) {
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

// GetCarHandler lida com a requisição GET /v1/cars/{id}.
// @Summary Busca um carro pelo ID
// @Tags cars
// @Produce json
// @Param id path string true "ULID do carro"
// @Success 200 {object} map[string]any
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /cars/{id} [get]
func (h *Handler) GetCarHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.findByID.Execute(r.Context(), r.PathValue("id"))
	h.single(w, r, data, err)
}

// GetCarByVinHandler lida com a requisição GET /v1/cars/vin/{vin}.
// @Summary Busca um carro pelo VIN
// @Tags cars
// @Produce json
// @Param vin path string true "Chassi (17 caracteres)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /cars/vin/{vin} [get]
func (h *Handler) GetCarByVinHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.findByVin.Execute(r.Context(), r.PathValue("vin"))
	h.single(w, r, data, err)
}

// GetCarByPlateHandler lida com a requisição GET /v1/cars/plate/{plate}.
// @Summary Busca um carro pela placa
// @Tags cars
// @Produce json
// @Param plate path string true "Placa antiga ou Mercosul"
// @Success 200 {object} map[string]any
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /cars/plate/{plate} [get]
func (h *Handler) GetCarByPlateHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.findByPlate.Execute(r.Context(), r.PathValue("plate"))
	h.single(w, r, data, err)
}

// ListCarsByClientHandler lida com a requisição GET /v1/cars/client/{clientId}.
// @Summary Lista os carros de um cliente
// @Tags cars
// @Produce json
// @Param clientId path string true "ULID do cliente"
// @Success 200 {array} map[string]any
// @Failure 400 {object} domain.ErrorResponse
// @Router /cars/client/{clientId} [get]
func (h *Handler) ListCarsByClientHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.findByClient.Execute(r.Context(), r.PathValue("clientId"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, items)
}

// UpdateCarHandler lida com a requisição PUT /v1/cars/{id}.
// @Summary Atualiza um carro
// @Tags cars
// @Accept json
// @Param id path string true "ULID do carro"
// @Param car body carusecase.UpdateCarInput true "Campos a alterar"
// @Success 204
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Placa ou VIN de outro carro"
// @Security BearerAuth
// @Router /cars/{id} [put]
func (h *Handler) UpdateCarHandler(w http.ResponseWriter, r *http.Request) {
	var in carusecase.UpdateCarInput
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

// DeleteCarHandler lida com a requisição DELETE /v1/cars/{id}.
// @Summary Remove um carro
// @Tags cars
// @Param id path string true "ULID do carro"
// @Success 204
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /cars/{id} [delete]
func (h *Handler) DeleteCarHandler(w http.ResponseWriter, r *http.Request) {
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
