package vo

import (
	"strings"

	apperror "gooficina/internal/errors"
)

// Address é o endereço do cliente. Todos os campos são obrigatórios.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
}

func NewAddress(street, city, state, zipCode string) (Address, error) {
	a := Address{
		street:  strings.TrimSpace(street),
		city:    strings.TrimSpace(city),
		state:   strings.TrimSpace(state),
		zipCode: strings.TrimSpace(zipCode),
	}

	switch {
	case a.street == "":
		return Address{}, apperror.NewKindValidationError("address", "street is required")
	case a.city == "":
		return Address{}, apperror.NewKindValidationError("address", "city is required")
	case a.state == "":
		return Address{}, apperror.NewKindValidationError("address", "state is required")
	case a.zipCode == "":
		return Address{}, apperror.NewKindValidationError("address", "zip code is required")
	}
	return a, nil
}

func (a Address) Street() string  { return a.street }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }
func (a Address) ZipCode() string { return a.zipCode }

func (a Address) String() string {
	return a.street + ", " + a.city + " - " + a.state + ", " + a.zipCode
}

func (a Address) Equals(other Address) bool { return a == other }

func (a Address) ToMap() map[string]any {
	return map[string]any{
		"street":   a.street,
		"city":     a.city,
		"state":    a.state,
		"zip_code": a.zipCode,
	}
}
