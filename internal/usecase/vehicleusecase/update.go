package vehicleusecase

import (
	"context"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
)

// UpdateVehicleInput: nil mantém o valor atual. ClientID não é alterável.
type UpdateVehicleInput struct {
	ID               string  `json:"-"`
	Brand            *string `json:"brand,omitempty"`
	Model            *string `json:"model,omitempty"`
	Year             *int    `json:"year,omitempty"`
	Type             *string `json:"type,omitempty"`
	LicencePlate     *string `json:"licence_plate,omitempty"`
	Vin              *string `json:"vin,omitempty"`
	Transmission     *string `json:"transmission,omitempty"`
	Color            *string `json:"color,omitempty"`
	CilinderCapacity *string `json:"cilinder_capacity,omitempty"`
	Mileage          *int    `json:"mileage,omitempty"`
	Observations     *string `json:"observations,omitempty"`
}

type UpdateVehicle struct {
	repo   domain.VehicleRepository
	logger logger.Logger
}

func NewUpdateVehicle(repo domain.VehicleRepository, log logger.Logger) *UpdateVehicle {
	return &UpdateVehicle{repo: repo, logger: log}
}

func (uc *UpdateVehicle) Execute(ctx context.Context, in UpdateVehicleInput) error {
	vehicle, err := findVehicle(ctx, uc.repo, in.ID)
	if err != nil {
		return err
	}

	if in.Brand != nil {
		if vehicle, err = vehicle.WithBrand(*in.Brand); err != nil {
			return err
		}
	}
	if in.Model != nil {
		if vehicle, err = vehicle.WithModel(*in.Model); err != nil {
			return err
		}
	}
	if in.Year != nil {
		if vehicle, err = vehicle.WithYear(*in.Year); err != nil {
			return err
		}
	}
	if in.Type != nil {
		if vehicle, err = vehicle.WithType(*in.Type); err != nil {
			return err
		}
	}
	if vehicle, err = applyOptional(vehicle, optionalAttrs{
		licencePlate:     in.LicencePlate,
		vin:              in.Vin,
		transmission:     in.Transmission,
		color:            in.Color,
		cilinderCapacity: in.CilinderCapacity,
		mileage:          in.Mileage,
		observations:     in.Observations,
	}); err != nil {
		return err
	}

	if err := uc.repo.Update(ctx, vehicle); err != nil {
		uc.logger.Error("Falha ao atualizar veículo.", err)
		return err
	}

	uc.logger.Info("Veículo atualizado com sucesso.", map[string]interface{}{"id": vehicle.ID()})
	return nil
}

func findVehicle(ctx context.Context, repo domain.VehicleRepository, id string) (*domain.Vehicle, error) {
	if !domain.IsValidID(id) {
		return nil, apperror.NewKindValidationError("vehicle", "O ID do veículo deve ser um ULID válido.")
	}

	vehicle, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewResourceNotFoundError("vehicle", "ID "+id)
	}
	return vehicle, nil
}
