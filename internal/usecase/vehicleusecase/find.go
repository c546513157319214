package vehicleusecase

import (
	"context"

	"gooficina/internal/domain"
	"gooficina/internal/domain/vo"
	apperror "gooficina/internal/errors"
)

type FindVehicleByID struct {
	repo domain.VehicleRepository
}

func NewFindVehicleByID(repo domain.VehicleRepository) *FindVehicleByID {
	return &FindVehicleByID{repo: repo}
}

func (uc *FindVehicleByID) Execute(ctx context.Context, id string) (map[string]any, error) {
	vehicle, err := findVehicle(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return vehicle.ToMap(), nil
}

type FindVehicleByVin struct {
	repo domain.VehicleRepository
}

func NewFindVehicleByVin(repo domain.VehicleRepository) *FindVehicleByVin {
	return &FindVehicleByVin{repo: repo}
}

func (uc *FindVehicleByVin) Execute(ctx context.Context, vin string) (map[string]any, error) {
	v, err := vo.NewVin(vin)
	if err != nil {
		return nil, err
	}

	vehicle, err := uc.repo.FindByVin(ctx, v.Value())
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewResourceNotFoundError("vehicle", "VIN "+v.Value())
	}
	return vehicle.ToMap(), nil
}

// FindVehicleByLicensePlate aceita a placa com ou sem hífen, em qualquer caixa.
type FindVehicleByLicensePlate struct {
	repo domain.VehicleRepository
}

func NewFindVehicleByLicensePlate(repo domain.VehicleRepository) *FindVehicleByLicensePlate {
	return &FindVehicleByLicensePlate{repo: repo}
}

func (uc *FindVehicleByLicensePlate) Execute(ctx context.Context, plate string) (map[string]any, error) {
	p, err := vo.NewLicensePlate(plate)
	if err != nil {
		return nil, err
	}

	vehicle, err := uc.repo.FindByLicensePlate(ctx, p.Value())
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewResourceNotFoundError("vehicle", "licence plate "+p.Value())
	}
	return vehicle.ToMap(), nil
}

// FindVehiclesByClientID devolve lista vazia (não erro) quando o cliente não tem veículos.
type FindVehiclesByClientID struct {
	repo domain.VehicleRepository
}

func NewFindVehiclesByClientID(repo domain.VehicleRepository) *FindVehiclesByClientID {
	return &FindVehiclesByClientID{repo: repo}
}

func (uc *FindVehiclesByClientID) Execute(ctx context.Context, clientID string) ([]map[string]any, error) {
	vehicles, err := uc.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]any, 0, len(vehicles))
	for _, vehicle := range vehicles {
		items = append(items, vehicle.ToMap())
	}
	return items, nil
}
