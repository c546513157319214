package vehicleusecase

import (
	"context"

	"gooficina/internal/domain"
)

type ListVehicles struct {
	repo domain.VehicleRepository
}

func NewListVehicles(repo domain.VehicleRepository) *ListVehicles {
	return &ListVehicles{repo: repo}
}

func (uc *ListVehicles) Execute(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	return uc.repo.FindAll(ctx, req)
}
