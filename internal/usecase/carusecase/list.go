package carusecase

import (
	"context"

	"gooficina/internal/domain"
)

type ListCars struct {
	repo domain.CarRepository
}

func NewListCars(repo domain.CarRepository) *ListCars {
	return &ListCars{repo: repo}
}

func (uc *ListCars) Execute(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	return uc.repo.FindAll(ctx, req)
}
