package carusecase

import (
	"context"

	"gooficina/internal/domain"
	"gooficina/internal/domain/vo"
	apperror "gooficina/internal/errors"
)

type FindCarByID struct {
	repo domain.CarRepository
}

func NewFindCarByID(repo domain.CarRepository) *FindCarByID {
	return &FindCarByID{repo: repo}
}

func (uc *FindCarByID) Execute(ctx context.Context, id string) (map[string]any, error) {
	car, err := findCar(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return car.ToMap(), nil
}

type FindCarByVin struct {
	repo domain.CarRepository
}

func NewFindCarByVin(repo domain.CarRepository) *FindCarByVin {
	return &FindCarByVin{repo: repo}
}

func (uc *FindCarByVin) Execute(ctx context.Context, vin string) (map[string]any, error) {
	v, err := vo.NewVin(vin)
	if err != nil {
		return nil, err
	}

	car, err := uc.repo.FindByVin(ctx, v.Value())
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, apperror.NewResourceNotFoundError("car", "VIN "+v.Value())
	}
	return car.ToMap(), nil
}

// FindCarByLicensePlate aceita a placa com ou sem hífen, em qualquer caixa.
type FindCarByLicensePlate struct {
	repo domain.CarRepository
}

func NewFindCarByLicensePlate(repo domain.CarRepository) *FindCarByLicensePlate {
	return &FindCarByLicensePlate{repo: repo}
}

func (uc *FindCarByLicensePlate) Execute(ctx context.Context, plate string) (map[string]any, error) {
	p, err := vo.NewLicensePlate(plate)
	if err != nil {
		return nil, err
	}

	car, err := uc.repo.FindByLicensePlate(ctx, p.Value())
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, apperror.NewResourceNotFoundError("car", "licence plate "+p.Value())
	}
	return car.ToMap(), nil
}

// FindCarsByClientID devolve lista vazia (não erro) quando o cliente não tem carros.
type FindCarsByClientID struct {
	repo domain.CarRepository
}

func NewFindCarsByClientID(repo domain.CarRepository) *FindCarsByClientID {
	return &FindCarsByClientID{repo: repo}
}

func (uc *FindCarsByClientID) Execute(ctx context.Context, clientID string) ([]map[string]any, error) {
	cars, err := uc.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]any, 0, len(cars))
	for _, car := range cars {
		items = append(items, car.ToMap())
	}
	return items, nil
}
