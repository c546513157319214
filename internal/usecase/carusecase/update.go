package carusecase

import (
	"context"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
)

// UpdateCarInput: nil mantém o valor atual. ClientID não é alterável.
type UpdateCarInput struct {
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

type UpdateCar struct {
	repo   domain.CarRepository
	logger logger.Logger
}

func NewUpdateCar(repo domain.CarRepository, log logger.Logger) *UpdateCar {
	return &UpdateCar{repo: repo, logger: log}
}

func (uc *UpdateCar) Execute(ctx context.Context, in UpdateCarInput) error {
	car, err := findCar(ctx, uc.repo, in.ID)
	if err != nil {
		return err
	}

	if in.Brand != nil {
		if car, err = car.WithBrand(*in.Brand); err != nil {
			return err
		}
	}
	if in.Model != nil {
		if car, err = car.WithModel(*in.Model); err != nil {
			return err
		}
	}
	if in.Year != nil {
		if car, err = car.WithYear(*in.Year); err != nil {
			return err
		}
	}
	if in.Type != nil {
		if car, err = car.WithType(*in.Type); err != nil {
			return err
		}
	}
	if car, err = applyOptional(car, optionalAttrs{
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

	if err := uc.repo.Update(ctx, car); err != nil {
		uc.logger.Error("Falha ao atualizar carro.", err)
		return err
	}

	uc.logger.Info("Carro atualizado com sucesso.", map[string]interface{}{"id": car.ID()})
	return nil
}

func findCar(ctx context.Context, repo domain.CarRepository, id string) (*domain.Car, error) {
	if !domain.IsValidID(id) {
		return nil, apperror.NewKindValidationError("car", "O ID do carro deve ser um ULID válido.")
	}

	car, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, apperror.NewResourceNotFoundError("car", "ID "+id)
	}
	return car, nil
}
