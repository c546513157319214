package vo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooficina/internal/domain/vo"
	apperror "gooficina/internal/errors"
)

func requireKind(t *testing.T, err error, kind string) {
	t.Helper()
	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, kind, vErr.Kind)
}

func TestNewDocument_ValidCPF(t *testing.T) {
	for _, raw := range []string{"529.982.247-25", "52998224725", "111.444.777-35"} {
		doc, err := vo.NewDocument(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, vo.DocumentTypeCPF, doc.Type())
		assert.Len(t, doc.Value(), 11)
		assert.NoError(t, doc.Validate())
	}

	doc, _ := vo.NewDocument("52998224725")
	assert.Equal(t, "529.982.247-25", doc.Formatted())
}

func TestNewDocument_ValidCNPJ(t *testing.T) {
	doc, err := vo.NewDocument("11.222.333/0001-81")
	require.NoError(t, err)

	assert.Equal(t, "11222333000181", doc.Value())
	assert.Equal(t, vo.DocumentTypeCNPJ, doc.Type())
	assert.Equal(t, "11.222.333/0001-81", doc.Formatted())
}

func TestNewDocument_Invalid(t *testing.T) {
	cases := map[string]string{
		"wrong first digit":  "529.982.247-35",
		"wrong second digit": "529.982.247-26",
		"repeated cpf":       "111.111.111-11",
		"repeated cnpj":      "00000000000000",
		"wrong cnpj digit":   "11.222.333/0001-82",
		"too short":          "1234567890",
		"between lengths":    "123456789012",
		"empty":              "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := vo.NewDocument(raw)
			requireKind(t, err, "document")
		})
	}
}

func TestCheckDigitLaws(t *testing.T) {
	// Todo dígito verificador diferente do correto deve ser rejeitado.
	for d := byte('0'); d <= '9'; d++ {
		cpf := "5299822472" + string(d)
		assert.Equal(t, d == '5', vo.IsValidCPF(cpf), cpf)

		cnpj := "1122233300018" + string(d)
		assert.Equal(t, d == '1', vo.IsValidCNPJ(cnpj), cnpj)
	}

	for d := byte('0'); d <= '9'; d++ {
		assert.False(t, vo.IsValidCPF(strings.Repeat(string(d), 11)))
		assert.False(t, vo.IsValidCNPJ(strings.Repeat(string(d), 14)))
	}

	assert.False(t, vo.IsValidCPF("5299822472a"))
}

func TestNewPhone(t *testing.T) {
	landline, err := vo.NewPhone("(11) 3456-7890")
	require.NoError(t, err)
	assert.Equal(t, "1134567890", landline.Value())
	assert.False(t, landline.IsMobile())
	assert.Equal(t, "(11) 3456-7890", landline.Formatted())

	mobile, err := vo.NewPhone("11 93456 7890")
	require.NoError(t, err)
	assert.True(t, mobile.IsMobile())
	assert.Equal(t, "(11) 93456-7890", mobile.Formatted())

	for _, raw := range []string{"123456789", "119345678901", ""} {
		_, err := vo.NewPhone(raw)
		requireKind(t, err, "phone")
	}
}

func TestNewAddress(t *testing.T) {
	addr, err := vo.NewAddress(" Rua das Flores, 10 ", "São Paulo", "SP", "01001-000")
	require.NoError(t, err)
	assert.Equal(t, "Rua das Flores, 10", addr.Street())
	assert.Equal(t, map[string]any{
		"street":   "Rua das Flores, 10",
		"city":     "São Paulo",
		"state":    "SP",
		"zip_code": "01001-000",
	}, addr.ToMap())

	_, err = vo.NewAddress("Rua A", "  ", "SP", "01001-000")
	requireKind(t, err, "address")
	_, err = vo.NewAddress("Rua A", "Campinas", "SP", "")
	requireKind(t, err, "address")
}

func TestNewVin(t *testing.T) {
	v, err := vo.NewVin("9BWZZZ377VT004251")
	require.NoError(t, err)
	assert.Equal(t, "9BWZZZ377VT004251", v.Value())

	invalid := []string{
		"9BWZZZ377VT00425",   // 16
		"9BWZZZ377VT0042511", // 18
		"9BWZZZ377IT004251",  // I
		"9BWZZZ377OT004251",  // O
		"9BWZZZ377QT004251",  // Q
		"9bwzzz377vt004251",  // minúsculas
	}
	for _, raw := range invalid {
		_, err := vo.NewVin(raw)
		requireKind(t, err, "vin")
	}
}

func TestNewLicensePlate(t *testing.T) {
	old, err := vo.NewLicensePlate("abc1234")
	require.NoError(t, err)
	assert.Equal(t, "ABC1234", old.Value())
	assert.Equal(t, "ABC-1234", old.Formatted())
	assert.False(t, old.IsMercosulFormat())

	mercosul, err := vo.NewLicensePlate("abc1d23")
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", mercosul.Formatted())
	assert.True(t, mercosul.IsMercosulFormat())

	hyphen, err := vo.NewLicensePlate("abc-1234")
	require.NoError(t, err)
	assert.True(t, hyphen.Equals(old))

	spaced, err := vo.NewLicensePlate(" ABC 1D23 ")
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", spaced.Value())

	for _, raw := range []string{"AB12345", "ABCD123", "ABC12D3", "", "1234ABC"} {
		_, err := vo.NewLicensePlate(raw)
		requireKind(t, err, "licence_plate")
	}
}
