package domain

import "strings"

const (
	DefaultSearchLimit = 15
	MaxSearchLimit     = 100
)

// SortDirection é a direção de ordenação aceita pelo FindAll.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SearchRequest descreve paginação, busca textual, ordenação e filtros exatos
// consumidos pelo FindAll de qualquer repositório.
type SearchRequest struct {
	Limit         int
	Page          int
	Search        string
	SortField     string
	SortDirection SortDirection
	Filters       map[string]string // coluna -> valor exato (AND)
}

// NewSearchRequest normaliza os parâmetros vindos da borda HTTP.
// Page < 1 vira 1; Limit <= 0 usa o padrão; Limit acima do máximo é truncado.
func NewSearchRequest(limit, page int, search, sortField, direction string, filters map[string]string) SearchRequest {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	dir := SortAsc
	if strings.EqualFold(strings.TrimSpace(direction), string(SortDesc)) {
		dir = SortDesc
	}

	cleaned := make(map[string]string, len(filters))
	for k, v := range filters {
		if k = strings.TrimSpace(k); k != "" {
			cleaned[k] = v
		}
	}

	return SearchRequest{
		Limit:         limit,
		Page:          page,
		Search:        strings.TrimSpace(search),
		SortField:     strings.TrimSpace(sortField),
		SortDirection: dir,
		Filters:       cleaned,
	}
}

// PageSize é o Limit dentro de [1, MaxSearchLimit]; <= 0 usa o padrão.
// Os adaptadores paginam por ele, nunca pelo Limit cru.
func (r SearchRequest) PageSize() int {
	switch {
	case r.Limit <= 0:
		return DefaultSearchLimit
	case r.Limit > MaxSearchLimit:
		return MaxSearchLimit
	}
	return r.Limit
}

// Offset = (page-1) * PageSize.
func (r SearchRequest) Offset() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * r.PageSize()
}

// Descending informa se a ordenação pedida é decrescente.
func (r SearchRequest) Descending() bool {
	return r.SortDirection == SortDesc
}

// SearchResponse carrega o total filtrado (sem paginação) e os itens da página
// já serializados pelo ToMap de cada entidade.
type SearchResponse struct {
	TotalItems int              `json:"total_items"`
	Items      []map[string]any `json:"items"`
}
