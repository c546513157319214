package vehicleusecase

import (
	"context"

	"gooficina/internal/domain"
	"gooficina/internal/pkg/logger"
)

type DeleteVehicle struct {
	repo   domain.VehicleRepository
	logger logger.Logger
}

func NewDeleteVehicle(repo domain.VehicleRepository, log logger.Logger) *DeleteVehicle {
	return &DeleteVehicle{repo: repo, logger: log}
}

func (uc *DeleteVehicle) Execute(ctx context.Context, id string) error {
	if _, err := findVehicle(ctx, uc.repo, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("Falha ao remover veículo.", err)
		return err
	}

	uc.logger.Info("Veículo removido.", map[string]interface{}{"id": id})
	return nil
}
