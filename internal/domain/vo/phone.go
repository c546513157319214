package vo

import apperror "gooficina/internal/errors"

// Phone é um telefone brasileiro com DDD: 10 dígitos (fixo) ou 11 (celular).
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) != 10 && len(digits) != 11 {
		return Phone{}, apperror.NewKindValidationError("phone", "phone must have 10 or 11 digits")
	}
	return Phone{value: digits}, nil
}

func (p Phone) Value() string  { return p.value }
func (p Phone) String() string { return p.value }

func (p Phone) IsMobile() bool { return len(p.value) == 11 }

// Formatted devolve (11) 3456-7890 ou (11) 93456-7890.
func (p Phone) Formatted() string {
	v := p.value
	if len(v) < 10 {
		return v
	}
	split := len(v) - 4
	return "(" + v[:2] + ") " + v[2:split] + "-" + v[split:]
}

func (p Phone) Equals(other Phone) bool { return p.value == other.value }
