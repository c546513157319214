package vehiclerepo

import (
	"gooficina/internal/domain"
	"gooficina/internal/domain/vo"
)

// VehicleRecord é a linha da tabela vehicles e o formato gravado no cache.
type VehicleRecord struct {
	ID               string  `json:"id"`
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
	Mileage          int     `json:"mileage"`
	Observations     *string `json:"observations,omitempty"`
}

// VehicleMapper converte VehicleRecord <-> domain.Vehicle.
type VehicleMapper struct{}

var _ domain.Mapper[*domain.Vehicle, VehicleRecord] = VehicleMapper{}

func (VehicleMapper) ToDomain(r VehicleRecord) (*domain.Vehicle, error) {
	vehicleType, err := domain.ParseVehicleType(r.Type)
	if err != nil {
		return nil, err
	}

	p := domain.VehicleParams{
		ID:               r.ID,
		Brand:            r.Brand,
		Model:            r.Model,
		Year:             r.Year,
		Type:             vehicleType,
		ClientID:         r.ClientID,
		Color:            deref(r.Color),
		CilinderCapacity: deref(r.CilinderCapacity),
		Mileage:          r.Mileage,
		Observations:     deref(r.Observations),
	}

	if r.LicencePlate != nil {
		plate, err := vo.NewLicensePlate(*r.LicencePlate)
		if err != nil {
			return nil, err
		}
		p.LicencePlate = &plate
	}
	if r.Vin != nil {
		vin, err := vo.NewVin(*r.Vin)
		if err != nil {
			return nil, err
		}
		p.Vin = &vin
	}
	if r.Transmission != nil {
		if p.Transmission, err = domain.ParseTransmission(*r.Transmission); err != nil {
			return nil, err
		}
	}

	return domain.NewVehicle(p)
}

func (VehicleMapper) ToPersistence(c *domain.Vehicle) VehicleRecord {
	return VehicleRecord{
		ID:               c.ID(),
		Brand:            c.Brand(),
		Model:            c.Model(),
		Year:             c.Year(),
		Type:             c.Type(),
		ClientID:         c.ClientID(),
		LicencePlate:     optional(c.LicencePlate()),
		Vin:              optional(c.Vin()),
		Transmission:     optional(c.Transmission()),
		Color:            optional(c.Color()),
		CilinderCapacity: optional(c.CilinderCapacity()),
		Mileage:          c.Mileage(),
		Observations:     optional(c.Observations()),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
