// Package vehicleusecase reúne os casos de uso do agregado Vehicle.
package vehicleusecase

import (
	"context"

	"gooficina/internal/domain"
	"gooficina/internal/domain/vo"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
)

// CreateVehicleInput é o payload de criação. Campos ponteiro são opcionais.
type CreateVehicleInput struct {
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

// CreateVehicle cadastra um veículo ou devolve o ID do veículo com a mesma placa ou VIN.
type CreateVehicle struct {
	repo   domain.VehicleRepository
	logger logger.Logger
}

func NewCreateVehicle(repo domain.VehicleRepository, log logger.Logger) *CreateVehicle {
	return &CreateVehicle{repo: repo, logger: log}
}

func (uc *CreateVehicle) Execute(ctx context.Context, in CreateVehicleInput) (string, error) {
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
		uc.logger.Error("Falha na verificação de duplicidade do veículo.", err)
		return "", err
	}
	if existing != nil {
		uc.logger.Info("Veículo já cadastrado.", map[string]interface{}{"id": existing.ID(), "licence_plate": plate, "vin": vin})
		return existing.ID(), nil
	}

	// 3. Monta a entidade
	vehicle, err := domain.CreateVehicle(in.Brand, in.Model, in.Year, in.Type, in.ClientID)
	if err != nil {
		return "", err
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
		return "", err
	}

	// 4. Persiste; Conflict indica corrida com outra criação da mesma placa/VIN
	if err := uc.repo.Save(ctx, vehicle); err != nil {
		if apperror.IsConflict(err) {
			if winner, findErr := uc.findExisting(ctx, plate, vin); findErr == nil && winner != nil {
				uc.logger.Warn("Criação concorrente de veículo resolvida pelo índice único.", map[string]interface{}{"id": winner.ID()})
				return winner.ID(), nil
			}
		}
		uc.logger.Error("Falha ao salvar veículo.", err)
		return "", err
	}

	uc.logger.Info("Veículo criado com sucesso.", map[string]interface{}{"id": vehicle.ID(), "client_id": vehicle.ClientID()})
	return vehicle.ID(), nil
}

func (uc *CreateVehicle) findExisting(ctx context.Context, plate, vin string) (*domain.Vehicle, error) {
	if plate != "" {
		vehicle, err := uc.repo.FindByLicensePlate(ctx, plate)
		if err != nil || vehicle != nil {
			return vehicle, err
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
func applyOptional(vehicle *domain.Vehicle, o optionalAttrs) (*domain.Vehicle, error) {
	var err error
	if o.licencePlate != nil {
		if vehicle, err = vehicle.WithLicencePlate(*o.licencePlate); err != nil {
			return nil, err
		}
	}
	if o.vin != nil {
		if vehicle, err = vehicle.WithVin(*o.vin); err != nil {
			return nil, err
		}
	}
	if o.transmission != nil {
		if vehicle, err = vehicle.WithTransmission(*o.transmission); err != nil {
			return nil, err
		}
	}
	if o.color != nil {
		if vehicle, err = vehicle.WithColor(*o.color); err != nil {
			return nil, err
		}
	}
	if o.cilinderCapacity != nil {
		if vehicle, err = vehicle.WithCilinderCapacity(*o.cilinderCapacity); err != nil {
			return nil, err
		}
	}
	if o.mileage != nil {
		if vehicle, err = vehicle.WithMileage(*o.mileage); err != nil {
			return nil, err
		}
	}
	if o.observations != nil {
		if vehicle, err = vehicle.WithObservations(*o.observations); err != nil {
			return nil, err
		}
	}
	return vehicle, nil
}
