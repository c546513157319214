package carusecase

import (
	"context"

	"gooficina/internal/domain"
	"gooficina/internal/pkg/logger"
)

type DeleteCar struct {
	repo   domain.CarRepository
	logger logger.Logger
}

func NewDeleteCar(repo domain.CarRepository, log logger.Logger) *DeleteCar {
	return &DeleteCar{repo: repo, logger: log}
}

func (uc *DeleteCar) Execute(ctx context.Context, id string) error {
	if _, err := findCar(ctx, uc.repo, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("Falha ao remover carro.", err)
		return err
	}

	uc.logger.Info("Carro removido.", map[string]interface{}{"id": id})
	return nil
}
