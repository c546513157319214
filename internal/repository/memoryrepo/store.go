// Package memoryrepo implementa os contratos de repositório em memória.
// É o driver de desenvolvimento (STORAGE_DRIVER=memory) e a base dos testes
// de casos de uso. As mesmas chaves únicas do Postgres são garantidas sob o mutex.
package memoryrepo

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/repository/sqlsearch"
)

// uniqueFunc devolve a mensagem de conflito quando candidate colide com other.
type uniqueFunc[E any] func(candidate, other E) string

// store guarda entidades por ID preservando a ordem de inserção,
// que faz o papel do created_at na ordenação padrão.
type store[E any] struct {
	mu     sync.RWMutex
	items  map[string]E
	order  []string
	spec   sqlsearch.Spec
	toMap  func(E) map[string]any
	unique uniqueFunc[E]
}

func newStore[E any](spec sqlsearch.Spec, toMap func(E) map[string]any, unique uniqueFunc[E]) *store[E] {
	return &store[E]{
		items:  make(map[string]E),
		spec:   spec,
		toMap:  toMap,
		unique: unique,
	}
}

func (s *store[E]) checkUnique(id string, candidate E) error {
	if s.unique == nil {
		return nil
	}
	for otherID, other := range s.items {
		if otherID == id {
			continue
		}
		if msg := s.unique(candidate, other); msg != "" {
			return apperror.NewConflictError(msg)
		}
	}
	return nil
}

func (s *store[E]) insert(id string, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return apperror.NewConflictError(fmt.Sprintf("%s com ID %s já existe", s.spec.Table, id))
	}
	if err := s.checkUnique(id, e); err != nil {
		return err
	}
	s.items[id] = e
	s.order = append(s.order, id)
	return nil
}

func (s *store[E]) replace(id string, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return apperror.NewResourceNotFoundError(s.spec.Table, "ID "+id)
	}
	if err := s.checkUnique(id, e); err != nil {
		return err
	}
	s.items[id] = e
	return nil
}

func (s *store[E]) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return apperror.NewResourceNotFoundError(s.spec.Table, "ID "+id)
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *store[E]) get(id string) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.items[id]
	return e, ok
}

// first devolve a primeira entidade (em ordem de inserção) que satisfaz match.
func (s *store[E]) first(match func(E) bool) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if e := s.items[id]; match(e) {
			return e, true
		}
	}
	var zero E
	return zero, false
}

func (s *store[E]) all(match func(E) bool) []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, 0)
	for _, id := range s.order {
		if e := s.items[id]; match(e) {
			out = append(out, e)
		}
	}
	return out
}

// search aplica busca, filtros, ordenação e paginação com a mesma semântica
// do sqlsearch.Build.
func (s *store[E]) search(req domain.SearchRequest) (domain.SearchResponse, error) {
	if err := s.spec.Validate(req); err != nil {
		return domain.SearchResponse{}, err
	}

	s.mu.RLock()
	rows := make([]map[string]any, 0, len(s.order))
	for _, id := range s.order {
		rows = append(rows, s.toMap(s.items[id]))
	}
	s.mu.RUnlock()

	term := strings.ToLower(req.Search)
	keys := sqlsearch.FilterKeys(req.Filters)

	matched := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		if term != "" && !s.matchesSearch(row, term) {
			continue
		}
		if !matchesFilters(row, keys, req.Filters) {
			continue
		}
		matched = append(matched, row)
	}

	if req.SortField != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			return less(matched[i][req.SortField], matched[j][req.SortField])
		})
	}
	if req.Descending() {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}

	total := len(matched)
	limit := req.PageSize()
	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return domain.SearchResponse{TotalItems: total, Items: matched[start:end]}, nil
}

func (s *store[E]) matchesSearch(row map[string]any, term string) bool {
	for _, col := range s.spec.Searchable {
		if strings.Contains(strings.ToLower(text(row[col])), term) {
			return true
		}
	}
	return false
}

func matchesFilters(row map[string]any, keys []string, filters map[string]string) bool {
	for _, col := range keys {
		if text(row[col]) != filters[col] {
			return false
		}
	}
	return true
}

func text(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func less(a, b any) bool {
	ai, aok := a.(int)
	bi, bok := b.(int)
	if aok && bok {
		return ai < bi
	}
	return text(a) < text(b)
}
