package domain

// Mapper traduz entre o registro de persistência R e a entidade E.
// ToDomain reconstrói a entidade passando por todas as validações; um registro
// que viole as invariantes é reportado como erro em vez de gerar entidade inválida.
type Mapper[E any, R any] interface {
	ToDomain(record R) (E, error)
	ToPersistence(entity E) R
}
