// Package sqlsearch traduz um domain.SearchRequest em SQL parametrizado
// ($1, $2...) para o Postgres e declara o catálogo de colunas de cada tabela.
package sqlsearch

import (
	"fmt"
	"sort"
	"strings"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
)

// Spec descreve as colunas de uma tabela expostas à busca.
// Columns aceita filtro exato e ordenação; Searchable entra no ILIKE.
type Spec struct {
	Table       string
	Columns     []string
	Searchable  []string
	DefaultSort string
}

var Clients = Spec{
	Table:       "clients",
	Columns:     []string{"id", "name", "email", "document", "document_type", "phone", "observations"},
	Searchable:  []string{"name", "email", "document", "phone"},
	DefaultSort: "created_at",
}

var Cars = Spec{
	Table: "cars",
	Columns: []string{"id", "brand", "model", "year", "type", "client_id", "licence_plate", "vin",
		"transmission", "color", "cilinder_capacity", "mileage", "observations"},
	Searchable:  []string{"brand", "model", "licence_plate", "vin", "color"},
	DefaultSort: "created_at",
}

var Vehicles = Spec{
	Table:       "vehicles",
	Columns:     Cars.Columns,
	Searchable:  Cars.Searchable,
	DefaultSort: "created_at",
}

// HasColumn informa se a coluna pode ser filtrada/ordenada.
func (s Spec) HasColumn(col string) bool {
	for _, c := range s.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Validate rejeita colunas de filtro ou ordenação fora do catálogo.
// Os nomes de coluna são interpolados no SQL, por isso só passam os declarados.
func (s Spec) Validate(req domain.SearchRequest) error {
	if req.SortField != "" && !s.HasColumn(req.SortField) {
		return apperror.NewKindValidationError("search", fmt.Sprintf("Campo de ordenação inválido: %s", req.SortField))
	}
	for col := range req.Filters {
		if !s.HasColumn(col) {
			return apperror.NewKindValidationError("search", fmt.Sprintf("Campo de filtro inválido: %s", col))
		}
	}
	return nil
}

// FilterKeys devolve as colunas de filtro em ordem estável.
func FilterKeys(filters map[string]string) []string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Query é o par SELECT paginado + COUNT sobre o mesmo WHERE.
type Query struct {
	Select    string
	Count     string
	Args      []any // argumentos do Select (inclui LIMIT/OFFSET)
	CountArgs []any
	Limit     int // tamanho de página já normalizado
}

// Build monta as consultas. selectColumns é a lista de colunas do SELECT.
// Linhas com deleted_at preenchido nunca aparecem.
func Build(spec Spec, selectColumns string, req domain.SearchRequest) (Query, error) {
	if err := spec.Validate(req); err != nil {
		return Query{}, err
	}

	where := []string{"deleted_at IS NULL"}
	var args []any

	// 1. Busca textual: OR entre as colunas pesquisáveis, mesmo placeholder
	if req.Search != "" && len(spec.Searchable) > 0 {
		args = append(args, "%"+req.Search+"%")
		n := len(args)
		ors := make([]string, 0, len(spec.Searchable))
		for _, col := range spec.Searchable {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}

	// 2. Filtros exatos (AND)
	for _, col := range FilterKeys(req.Filters) {
		args = append(args, req.Filters[col])
		where = append(where, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	whereSQL := strings.Join(where, " AND ")

	// 3. Ordenação com desempate por id para paginação estável
	orderBy := spec.DefaultSort
	if req.SortField != "" {
		orderBy = req.SortField
	}
	dir := "ASC"
	if req.Descending() {
		dir = "DESC"
	}

	limit := req.PageSize()

	countArgs := append([]any(nil), args...)
	selectArgs := append(args, limit, req.Offset())

	return Query{
		Select: fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d",
			selectColumns, spec.Table, whereSQL, orderBy, dir, dir, len(selectArgs)-1, len(selectArgs)),
		Count:     fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", spec.Table, whereSQL),
		Args:      selectArgs,
		CountArgs: countArgs,
		Limit:     limit,
	}, nil
}
