// Package respond concentra o que todos os handlers fazem igual:
// serializar respostas, traduzir erros e ler parâmetros de busca.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
)

// IDResponse é o corpo devolvido pelas rotas de criação.
type IDResponse struct {
	ID string `json:"id" example:"01HZXJ8Q4V5T6Y7W8X9Y0Z1A2B"`
}

// JSON escreve data com o status informado. data nil gera corpo vazio.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error traduz err para domain.ErrorResponse. Erros 5xx são logados como Error,
// os demais como Debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category),
			map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// Decode lê o corpo JSON em dst, recusando campos desconhecidos.
func Decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperror.NewValidationError(fmt.Sprintf("Payload JSON inválido: %v", err))
	}
	return nil
}

// ParseSearchRequest lê limit, page, search, sort_field, sort e filter[col]=valor.
func ParseSearchRequest(r *http.Request) (domain.SearchRequest, error) {
	q := r.URL.Query()

	limit, err := intParam(q.Get("limit"), "limit")
	if err != nil {
		return domain.SearchRequest{}, err
	}
	page, err := intParam(q.Get("page"), "page")
	if err != nil {
		return domain.SearchRequest{}, err
	}

	filters := make(map[string]string)
	for key, values := range q {
		if col, ok := strings.CutPrefix(key, "filter["); ok && strings.HasSuffix(col, "]") && len(values) > 0 {
			filters[strings.TrimSuffix(col, "]")] = values[0]
		}
	}

	return domain.NewSearchRequest(limit, page, q.Get("search"), q.Get("sort_field"), q.Get("sort"), filters), nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewKindValidationError("search", fmt.Sprintf("%s deve ser um número inteiro", name))
	}
	return n, nil
}
