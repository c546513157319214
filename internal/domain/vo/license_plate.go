package vo

import (
	"regexp"
	"strings"

	apperror "gooficina/internal/errors"
)

var (
	oldPlatePattern      = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlatePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
	plateSeparators      = strings.NewReplacer("-", "", " ", "")
)

// LicensePlate aceita o padrão antigo (ABC1234) e o Mercosul (ABC1D23).
type LicensePlate struct {
	value string
}

func NewLicensePlate(raw string) (LicensePlate, error) {
	v := strings.ToUpper(plateSeparators.Replace(raw))
	if !oldPlatePattern.MatchString(v) && !mercosulPlatePattern.MatchString(v) {
		return LicensePlate{}, apperror.NewKindValidationError("licence_plate", "licence plate must match AAA0000 or AAA0A00")
	}
	return LicensePlate{value: v}, nil
}

// Value é a forma normalizada, sem separadores.
func (p LicensePlate) Value() string  { return p.value }
func (p LicensePlate) String() string { return p.value }

func (p LicensePlate) IsMercosulFormat() bool {
	return mercosulPlatePattern.MatchString(p.value)
}

// Formatted: AAA-0000 no padrão antigo, AAA0A00 no Mercosul.
func (p LicensePlate) Formatted() string {
	if p.IsMercosulFormat() || len(p.value) != 7 {
		return p.value
	}
	return p.value[:3] + "-" + p.value[3:]
}

func (p LicensePlate) Equals(other LicensePlate) bool { return p.value == other.value }
