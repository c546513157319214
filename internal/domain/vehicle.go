package domain

import (
	"context"
	"strings"

	"gooficina/internal/domain/vo"
)

// Vehicle é o cadastro genérico de veículos (carro, moto, caminhão, van, ônibus).
// Segue as mesmas regras do Car; muda apenas a enumeração do tipo.
type Vehicle struct {
	id               string
	brand            string
	model            string
	year             int
	vehicleType      VehicleType
	clientID         string
	licencePlate     *vo.LicensePlate
	vin              *vo.Vin
	transmission     Transmission
	color            string
	cilinderCapacity string
	mileage          int
	observations     string
}

// VehicleParams reconstrói um Vehicle já persistido.
type VehicleParams struct {
	ID               string
	Brand            string
	Model            string
	Year             int
	Type             VehicleType
	ClientID         string
	LicencePlate     *vo.LicensePlate
	Vin              *vo.Vin
	Transmission     Transmission
	Color            string
	CilinderCapacity string
	Mileage          int
	Observations     string
}

// CreateVehicle cria um veículo novo com ID gerado.
func CreateVehicle(brand, model string, year int, vehicleType string, clientID string) (*Vehicle, error) {
	t, err := ParseVehicleType(vehicleType)
	if err != nil {
		return nil, err
	}
	return NewVehicle(VehicleParams{Brand: brand, Model: model, Year: year, Type: t, ClientID: clientID})
}

func NewVehicle(p VehicleParams) (*Vehicle, error) {
	id := p.ID
	if id == "" {
		id = NewID()
	}
	return buildVehicle(Vehicle{
		id:               id,
		brand:            p.Brand,
		model:            p.Model,
		year:             p.Year,
		vehicleType:      p.Type,
		clientID:         p.ClientID,
		licencePlate:     p.LicencePlate,
		vin:              p.Vin,
		transmission:     p.Transmission,
		color:            p.Color,
		cilinderCapacity: p.CilinderCapacity,
		mileage:          p.Mileage,
		observations:     p.Observations,
	})
}

func buildVehicle(v Vehicle) (*Vehicle, error) {
	v.brand = strings.TrimSpace(v.brand)
	v.model = strings.TrimSpace(v.model)
	v.color = strings.TrimSpace(v.color)
	v.cilinderCapacity = strings.TrimSpace(v.cilinderCapacity)

	if err := validateVehicleCore("vehicle", v.brand, v.model, v.year, v.clientID, v.mileage); err != nil {
		return nil, err
	}
	if _, err := ParseVehicleType(string(v.vehicleType)); err != nil {
		return nil, err
	}
	if v.transmission != "" {
		if _, err := ParseTransmission(string(v.transmission)); err != nil {
			return nil, err
		}
	}
	return &v, nil
}

func (v *Vehicle) ID() string               { return v.id }
func (v *Vehicle) Brand() string            { return v.brand }
func (v *Vehicle) Model() string            { return v.model }
func (v *Vehicle) Year() int                { return v.year }
func (v *Vehicle) Type() string             { return string(v.vehicleType) }
func (v *Vehicle) ClientID() string         { return v.clientID }
func (v *Vehicle) Transmission() string     { return string(v.transmission) }
func (v *Vehicle) Color() string            { return v.color }
func (v *Vehicle) CilinderCapacity() string { return v.cilinderCapacity }
func (v *Vehicle) Mileage() int             { return v.mileage }
func (v *Vehicle) Observations() string     { return v.observations }

// LicencePlate devolve a placa normalizada ou "".
func (v *Vehicle) LicencePlate() string {
	if v.licencePlate == nil {
		return ""
	}
	return v.licencePlate.Value()
}

// Vin devolve o chassi ou "".
func (v *Vehicle) Vin() string {
	if v.vin == nil {
		return ""
	}
	return v.vin.Value()
}

func (v *Vehicle) WithBrand(brand string) (*Vehicle, error) {
	next := *v
	next.brand = brand
	return buildVehicle(next)
}

func (v *Vehicle) WithModel(model string) (*Vehicle, error) {
	next := *v
	next.model = model
	return buildVehicle(next)
}

func (v *Vehicle) WithYear(year int) (*Vehicle, error) {
	next := *v
	next.year = year
	return buildVehicle(next)
}

func (v *Vehicle) WithType(vehicleType string) (*Vehicle, error) {
	t, err := ParseVehicleType(vehicleType)
	if err != nil {
		return nil, err
	}
	next := *v
	next.vehicleType = t
	return buildVehicle(next)
}

func (v *Vehicle) WithLicencePlate(plate string) (*Vehicle, error) {
	p, err := vo.NewLicensePlate(plate)
	if err != nil {
		return nil, err
	}
	next := *v
	next.licencePlate = &p
	return buildVehicle(next)
}

func (v *Vehicle) WithVin(vin string) (*Vehicle, error) {
	parsed, err := vo.NewVin(vin)
	if err != nil {
		return nil, err
	}
	next := *v
	next.vin = &parsed
	return buildVehicle(next)
}

func (v *Vehicle) WithTransmission(transmission string) (*Vehicle, error) {
	t, err := ParseTransmission(transmission)
	if err != nil {
		return nil, err
	}
	next := *v
	next.transmission = t
	return buildVehicle(next)
}

func (v *Vehicle) WithColor(color string) (*Vehicle, error) {
	next := *v
	next.color = color
	return buildVehicle(next)
}

func (v *Vehicle) WithCilinderCapacity(capacity string) (*Vehicle, error) {
	next := *v
	next.cilinderCapacity = capacity
	return buildVehicle(next)
}

func (v *Vehicle) WithMileage(mileage int) (*Vehicle, error) {
	next := *v
	next.mileage = mileage
	return buildVehicle(next)
}

func (v *Vehicle) WithObservations(observations string) (*Vehicle, error) {
	next := *v
	next.observations = observations
	return buildVehicle(next)
}

func (v *Vehicle) ToMap() map[string]any {
	return map[string]any{
		"id":                v.id,
		"brand":             v.brand,
		"model":             v.model,
		"year":              v.year,
		"type":              string(v.vehicleType),
		"client_id":         v.clientID,
		"licence_plate":     v.LicencePlate(),
		"vin":               v.Vin(),
		"transmission":      string(v.transmission),
		"color":             v.color,
		"cilinder_capacity": v.cilinderCapacity,
		"mileage":           v.mileage,
		"observations":      v.observations,
	}
}

// VehicleRepository é o contrato de persistência de veículos.
type VehicleRepository interface {
	Save(ctx context.Context, vehicle *Vehicle) error
	Update(ctx context.Context, vehicle *Vehicle) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Vehicle, error)
	FindAll(ctx context.Context, req SearchRequest) (SearchResponse, error)
	FindByVin(ctx context.Context, vin string) (*Vehicle, error)
	FindByLicensePlate(ctx context.Context, plate string) (*Vehicle, error)
	FindByClientID(ctx context.Context, clientID string) ([]*Vehicle, error)
}
