package client

import (
	"net/http"

	"gooficina/internal/api/respond"
	"gooficina/internal/domain"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/pkg/middleware"
	"gooficina/internal/usecase/clientusecase"
)

// Handler agrupa os endpoints de clientes.
type Handler struct {
	create    *clientusecase.CreateClient
	update    *clientusecase.UpdateClient
	remove    *clientusecase.DeleteClient
	findByID  *clientusecase.FindClientByID
	findByDoc *clientusecase.FindClientByDocument
	list      *clientusecase.ListClients
	Logger    logger.Logger
}

// NewHandler monta todos os casos de uso de cliente sobre o mesmo repositório.
func NewHandler(repo domain.ClientRepository, log logger.Logger) *Handler {
	return &Handler{
		create:    clientusecase.NewCreateClient(repo, log),
		update:    clientusecase.NewUpdateClient(repo, log),
		remove:    clientusecase.NewDeleteClient(repo, log),
		findByID:  clientusecase.NewFindClientByID(repo),
		findByDoc: clientusecase.NewFindClientByDocument(repo),
		list:      clientusecase.NewListClients(repo),
		Logger:    log,
	}
}

// CreateClientHandler lida com a requisição POST /v1/clients.
// @Summary Cadastra um cliente
// @Description Cria o cliente ou devolve o ID do cliente que já possui o mesmo documento.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body clientusecase.CreateClientInput true "Dados do cliente"
// @Success 201 {object} respond.IDResponse
// @Failure 400 {object} domain.ErrorResponse "Documento, telefone ou endereço inválido"
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *Handler) CreateClientHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if claims, ok := middleware.GetUserClaimsFromContext(ctx); ok {
		h.Logger.Info("Cadastro de cliente solicitado", map[string]interface{}{"user_id": claims.UserID, "role": claims.Role})
	}

	var in clientusecase.CreateClientInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	id, err := h.create.Execute(ctx, in)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusCreated, respond.IDResponse{ID: id})
}

// ListClientsHandler lida com a requisição GET /v1/clients.
// @Summary Lista clientes
// @Tags clients
// @Produce json
// @Param limit query int false "Itens por página (padrão 15, máximo 100)"
// @Param page query int false "Página, a partir de 1"
// @Param search query string false "Busca em name, email, document e phone"
// @Param sort_field query string false "Coluna de ordenação"
// @Param sort query string false "asc ou desc"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} domain.ErrorResponse "Coluna de ordenação ou filtro desconhecida"
// @Router /clients [get]
func (h *Handler) ListClientsHandler(w http.ResponseWriter, r *http.Request) {
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

// GetClientHandler lida com a requisição GET /v1/clients/{id}.
// @Summary Busca um cliente pelo ID
// @Tags clients
// @Produce json
// @Param id path string true "ULID do cliente"
// @Success 200 {object} map[string]any
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse
// @Router /clients/{id} [get]
func (h *Handler) GetClientHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.findByID.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, data)
}

// GetClientByDocumentHandler lida com a requisição GET /v1/clients/document/{document}.
// @Summary Busca um cliente pelo CPF ou CNPJ
// @Tags clients
// @Produce json
// @Param document path string true "CPF ou CNPJ, com ou sem máscara"
// @Success 200 {object} map[string]any
// @Failure 400 {object} domain.ErrorResponse "Documento inválido"
// @Failure 404 {object} domain.ErrorResponse
// @Router /clients/document/{document} [get]
func (h *Handler) GetClientByDocumentHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.findByDoc.Execute(r.Context(), r.PathValue("document"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, data)
}

// UpdateClientHandler lida com a requisição PUT /v1/clients/{id}.
// @Summary Atualiza um cliente
// @Description Campos ausentes mantêm o valor atual.
// @Tags clients
// @Accept json
// @Param id path string true "ULID do cliente"
// @Param client body clientusecase.UpdateClientInput true "Campos a alterar"
// @Success 204
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Documento pertence a outro cliente"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *Handler) UpdateClientHandler(w http.ResponseWriter, r *http.Request) {
	var in clientusecase.UpdateClientInput
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

// DeleteClientHandler lida com a requisição DELETE /v1/clients/{id}.
// @Summary Remove um cliente
// @Tags clients
// @Param id path string true "ULID do cliente"
// @Success 204
// @Failure 403 {object} domain.ErrorResponse "Perfil sem permissão"
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *Handler) DeleteClientHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.remove.Execute(r.Context(), r.PathValue("id")); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusNoContent, nil)
}
