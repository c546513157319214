package vo

import (
	"regexp"
	"strings"

	apperror "gooficina/internal/errors"
)

// I, O e Q não fazem parte do alfabeto do chassi (ISO 3779).
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// Vin é o número de chassi. Não há normalização de caixa: minúsculas são inválidas.
type Vin struct {
	value string
}

func NewVin(raw string) (Vin, error) {
	v := strings.TrimSpace(raw)
	if !vinPattern.MatchString(v) {
		return Vin{}, apperror.NewKindValidationError("vin", "VIN must have 17 characters from A-H, J-N, P, R-Z and 0-9")
	}
	return Vin{value: v}, nil
}

func (v Vin) Value() string  { return v.value }
func (v Vin) String() string { return v.value }

func (v Vin) Equals(other Vin) bool { return v.value == other.value }
