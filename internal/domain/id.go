package domain

import "github.com/oklog/ulid/v2"

// NewID gera um ULID: 26 caracteres base32, ordenável pela data de criação.
// ulid.Make usa entropia monotônica e é seguro para uso concorrente.
func NewID() string {
	return ulid.Make().String()
}

// IsValidID informa se id é um ULID bem formado.
func IsValidID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
