package domain

import (
	"context"
	"strings"

	"gooficina/internal/domain/vo"
)

// Car é o carro de um cliente. Um cliente pode ter vários carros; a entidade
// guarda apenas o clientID, sem verificar a existência do cliente.
// ID e clientID nunca mudam depois da criação.
type Car struct {
	id               string
	brand            string
	model            string
	year             int
	carType          CarType
	clientID         string
	licencePlate     *vo.LicensePlate
	vin              *vo.Vin
	transmission     Transmission
	color            string
	cilinderCapacity string
	mileage          int
	observations     string
}

// CarParams reconstrói um Car já persistido.
type CarParams struct {
	ID               string
	Brand            string
	Model            string
	Year             int
	Type             CarType
	ClientID         string
	LicencePlate     *vo.LicensePlate
	Vin              *vo.Vin
	Transmission     Transmission
	Color            string
	CilinderCapacity string
	Mileage          int
	Observations     string
}

// CreateCar cria um carro novo com ID gerado.
func CreateCar(brand, model string, year int, carType string, clientID string) (*Car, error) {
	t, err := ParseCarType(carType)
	if err != nil {
		return nil, err
	}
	return NewCar(CarParams{Brand: brand, Model: model, Year: year, Type: t, ClientID: clientID})
}

func NewCar(p CarParams) (*Car, error) {
	id := p.ID
	if id == "" {
		id = NewID()
	}
	return buildCar(Car{
		id:               id,
		brand:            p.Brand,
		model:            p.Model,
		year:             p.Year,
		carType:          p.Type,
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

func buildCar(c Car) (*Car, error) {
	c.brand = strings.TrimSpace(c.brand)
	c.model = strings.TrimSpace(c.model)
	c.color = strings.TrimSpace(c.color)
	c.cilinderCapacity = strings.TrimSpace(c.cilinderCapacity)

	if err := validateVehicleCore("car", c.brand, c.model, c.year, c.clientID, c.mileage); err != nil {
		return nil, err
	}
	if _, err := ParseCarType(string(c.carType)); err != nil {
		return nil, err
	}
	if c.transmission != "" {
		if _, err := ParseTransmission(string(c.transmission)); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (c *Car) ID() string               { return c.id }
func (c *Car) Brand() string            { return c.brand }
func (c *Car) Model() string            { return c.model }
func (c *Car) Year() int                { return c.year }
func (c *Car) Type() string             { return string(c.carType) }
func (c *Car) ClientID() string         { return c.clientID }
func (c *Car) Transmission() string     { return string(c.transmission) }
func (c *Car) Color() string            { return c.color }
func (c *Car) CilinderCapacity() string { return c.cilinderCapacity }
func (c *Car) Mileage() int             { return c.mileage }
func (c *Car) Observations() string     { return c.observations }

// LicencePlate devolve a placa normalizada ou "".
func (c *Car) LicencePlate() string {
	if c.licencePlate == nil {
		return ""
	}
	return c.licencePlate.Value()
}

// Vin devolve o chassi ou "".
func (c *Car) Vin() string {
	if c.vin == nil {
		return ""
	}
	return c.vin.Value()
}

func (c *Car) WithBrand(brand string) (*Car, error) {
	next := *c
	next.brand = brand
	return buildCar(next)
}

func (c *Car) WithModel(model string) (*Car, error) {
	next := *c
	next.model = model
	return buildCar(next)
}

func (c *Car) WithYear(year int) (*Car, error) {
	next := *c
	next.year = year
	return buildCar(next)
}

func (c *Car) WithType(carType string) (*Car, error) {
	t, err := ParseCarType(carType)
	if err != nil {
		return nil, err
	}
	next := *c
	next.carType = t
	return buildCar(next)
}

func (c *Car) WithLicencePlate(plate string) (*Car, error) {
	p, err := vo.NewLicensePlate(plate)
	if err != nil {
		return nil, err
	}
	next := *c
	next.licencePlate = &p
	return buildCar(next)
}

func (c *Car) WithVin(vin string) (*Car, error) {
	v, err := vo.NewVin(vin)
	if err != nil {
		return nil, err
	}
	next := *c
	next.vin = &v
	return buildCar(next)
}

func (c *Car) WithTransmission(transmission string) (*Car, error) {
	t, err := ParseTransmission(transmission)
	if err != nil {
		return nil, err
	}
	next := *c
	next.transmission = t
	return buildCar(next)
}

func (c *Car) WithColor(color string) (*Car, error) {
	next := *c
	next.color = color
	return buildCar(next)
}

func (c *Car) WithCilinderCapacity(capacity string) (*Car, error) {
	next := *c
	next.cilinderCapacity = capacity
	return buildCar(next)
}

func (c *Car) WithMileage(mileage int) (*Car, error) {
	next := *c
	next.mileage = mileage
	return buildCar(next)
}

func (c *Car) WithObservations(observations string) (*Car, error) {
	next := *c
	next.observations = observations
	return buildCar(next)
}

func (c *Car) ToMap() map[string]any {
	return map[string]any{
		"id":                c.id,
		"brand":             c.brand,
		"model":             c.model,
		"year":              c.year,
		"type":              string(c.carType),
		"client_id":         c.clientID,
		"licence_plate":     c.LicencePlate(),
		"vin":               c.Vin(),
		"transmission":      string(c.transmission),
		"color":             c.color,
		"cilinder_capacity": c.cilinderCapacity,
		"mileage":           c.mileage,
		"observations":      c.observations,
	}
}

// CarRepository é o contrato de persistência de carros.
// Placa e VIN chegam normalizados pelos value objects.
type CarRepository interface {
	Save(ctx context.Context, car *Car) error
	Update(ctx context.Context, car *Car) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Car, error)
	FindAll(ctx context.Context, req SearchRequest) (SearchResponse, error)
	FindByVin(ctx context.Context, vin string) (*Car, error)
	FindByLicensePlate(ctx context.Context, plate string) (*Car, error)
	FindByClientID(ctx context.Context, clientID string) ([]*Car, error)
}
