// Package carusecase reúne os casos de uso do agregado Car.
package carusecase

import (
	"context"

	"gooficina/internal/domain"
	"gooficina/internal/domain/vo"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
)

// CreateCarInput é o payload de criação. Campos ponteiro são opcionais.
type CreateCarInput struct {
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	Year             int     `json:"year"`
	Type             string  `json:"type"`
	ClientID         string  `json:"client_id"`
	LicencePlate     *string `json:"licence_plate,omitempty"`
	Vin              *string `json:"vin,omitempty"`
	Transmission     *string `json:"transmission,omitempty"`
	Color            *string `json:"color,omitempty"`
	CilinderCapacity *string `json:"cilinder_capacity,omitempty"`
	Mileage          *int    `json:"mileage,omitempty"`
	Observations     *string `json:"observations,omitempty"`
}

// CreateCar cadastra um carro ou devolve o ID do carro com a mesma placa ou VIN.
type CreateCar struct {
	repo   domain.CarRepository
	logger logger.Logger
}

func NewCreateCar(repo domain.CarRepository, log logger.Logger) *CreateCar {
	return &CreateCar{repo: repo, logger: log}
}

func (uc *CreateCar) Execute(ctx context.Context, in CreateCarInput) (string, error) {
	// 1. Normaliza as chaves naturais pelos value objects
	var plate, vin string
	if in.LicencePlate != nil {
		p, err := vo.NewLicensePlate(*in.LicencePlate)
		if err != nil {
			return "", err
		}
		plate = p.Value()
	}
	if in.Vin != nil {
		v, err := vo.NewVin(*in.Vin)
		if err != nil {
			return "", err
		}
		vin = v.Value()
	}

	// 2. Dedup por placa e depois por VIN
	existing, err := uc.findExisting(ctx, plate, vin)
	if err != nil {
		uc.logger.Error("Falha na verificação de duplicidade do carro.", err)
		return "", err
	}
	if existing != nil {
		uc.logger.Info("Carro já cadastrado.", map[string]interface{}{"id": existing.ID(), "licence_plate": plate, "vin": vin})
		return existing.ID(), nil
	}

	// 3. Monta a entidade
	car, err := domain.CreateCar(in.Brand, in.Model, in.Year, in.Type, in.ClientID)
	if err != nil {
		return "", err
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
		return "", err
	}

	// 4. Persiste; Conflict indica corrida com outra criação da mesma placa/VIN
	if err := uc.repo.Save(ctx, car); err != nil {
		if apperror.IsConflict(err) {
			if winner, findErr := uc.findExisting(ctx, plate, vin); findErr == nil && winner != nil {
				uc.logger.Warn("Criação concorrente de carro resolvida pelo índice único.", map[string]interface{}{"id": winner.ID()})
				return winner.ID(), nil
			}
		}
		uc.logger.Error("Falha ao salvar carro.", err)
		return "", err
	}

	uc.logger.Info("Carro criado com sucesso.", map[string]interface{}{"id": car.ID(), "client_id": car.ClientID()})
	return car.ID(), nil
}

func (uc *CreateCar) findExisting(ctx context.Context, plate, vin string) (*domain.Car, error) {
	if plate != "" {
		car, err := uc.repo.FindByLicensePlate(ctx, plate)
		if err != nil || car != nil {
			return car, err
		}
	}
	if vin != "" {
		return uc.repo.FindByVin(ctx, vin)
	}
	return nil, nil
}

// optionalAttrs agrupa os campos opcionais comuns à criação e à atualização.
type optionalAttrs struct {
	licencePlate     *string
	vin              *string
	transmission     *string
	color            *string
	cilinderCapacity *string
	mileage          *int
	observations     *string
}

// applyOptional encadeia os WithX apenas para os campos informados.
func applyOptional(car *domain.Car, o optionalAttrs) (*domain.Car, error) {
	var err error
	if o.licencePlate != nil {
		if car, err = car.WithLicencePlate(*o.licencePlate); err != nil {
			return nil, err
		}
	}
	if o.vin != nil {
		if car, err = car.WithVin(*o.vin); err != nil {
			return nil, err
		}
	}
	if o.transmission != nil {
		if car, err = car.WithTransmission(*o.transmission); err != nil {
			return nil, err
		}
	}
	if o.color != nil {
		if car, err = car.WithColor(*o.color); err != nil {
			return nil, err
		}
	}
	if o.cilinderCapacity != nil {
		if car, err = car.WithCilinderCapacity(*o.cilinderCapacity); err != nil {
			return nil, err
		}
	}
	if o.mileage != nil {
		if car, err = car.WithMileage(*o.mileage); err != nil {
			return nil, err
		}
	}
	if o.observations != nil {
		if car, err = car.WithObservations(*o.observations); err != nil {
			return nil, err
		}
	}
	return car, nil
}
