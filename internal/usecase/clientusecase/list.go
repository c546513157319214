package clientusecase

import (
	"context"

	"gooficina/internal/domain"
)

// ListClients repassa a busca paginada ao repositório.
type ListClients struct {
	repo domain.ClientRepository
}

func NewListClients(repo domain.ClientRepository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	return uc.repo.FindAll(ctx, req)
}
