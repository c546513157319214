package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	apperror "gooficina/internal/errors"
)

// MinVehicleYear é o ano do primeiro automóvel (Benz Patent-Motorwagen).
const MinVehicleYear = 1886

// CarType é a carroceria de um Car.
type CarType string

const (
	CarTypeSedan       CarType = "sedan"
	CarTypeHatchback   CarType = "hatchback"
	CarTypeSUV         CarType = "suv"
	CarTypeCoupe       CarType = "coupe"
	CarTypeConvertible CarType = "convertible"
	CarTypeWagon       CarType = "wagon"
	CarTypeVan         CarType = "van"
	CarTypePickup      CarType = "pickup"
)

var carTypes = []CarType{
	CarTypeSedan, CarTypeHatchback, CarTypeSUV, CarTypeCoupe,
	CarTypeConvertible, CarTypeWagon, CarTypeVan, CarTypePickup,
}

// ParseCarType aceita qualquer caixa e espaços ao redor.
func ParseCarType(s string) (CarType, error) {
	return parseEnum("car_type", s, carTypes)
}

// VehicleType é a categoria de um Vehicle.
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeVan        VehicleType = "van"
	VehicleTypeBus        VehicleType = "bus"
)

var vehicleTypes = []VehicleType{
	VehicleTypeCar, VehicleTypeMotorcycle, VehicleTypeTruck, VehicleTypeVan, VehicleTypeBus,
}

func ParseVehicleType(s string) (VehicleType, error) {
	return parseEnum("vehicle_type", s, vehicleTypes)
}

// Transmission é opcional nas entidades; o valor zero significa "não informado".
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

var transmissions = []Transmission{TransmissionManual, TransmissionAutomatic}

func ParseTransmission(s string) (Transmission, error) {
	return parseEnum("transmission", s, transmissions)
}

func parseEnum[T ~string](kind, raw string, allowed []T) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(raw)))
	names := make([]string, len(allowed))
	for i, a := range allowed {
		if a == v {
			return a, nil
		}
		names[i] = string(a)
	}
	return "", apperror.NewInvalidEnumError(kind, raw, names)
}

// validateVehicleCore concentra as regras comuns a Car e Vehicle.
// kind vai para o ValidationError ("car" ou "vehicle").
func validateVehicleCore(kind, brand, model string, year int, clientID string, mileage int) error {
	if utf8.RuneCountInString(brand) < 3 {
		return apperror.NewKindValidationError(kind, "Brand must be at least 3 characters long")
	}
	if utf8.RuneCountInString(model) < 1 {
		return apperror.NewKindValidationError(kind, "Model must be at least 1 character long")
	}
	if current := time.Now().Year(); year < MinVehicleYear || year > current {
		return apperror.NewKindValidationError(kind, fmt.Sprintf("Year must be between %d and %d", MinVehicleYear, current))
	}
	if clientID == "" {
		return apperror.NewKindValidationError(kind, "Client id is required")
	}
	if mileage < 0 {
		return apperror.NewKindValidationError(kind, "Mileage cannot be negative")
	}
	return nil
}
