// Package vo contém os value objects do domínio da oficina.
// Todos validam no construtor: uma instância obtida sem erro é sempre válida.
package vo

import (
	"regexp"
	"strings"

	apperror "gooficina/internal/errors"
)

// DocumentType distingue pessoa física (CPF) de pessoa jurídica (CNPJ).
type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "cpf"
	DocumentTypeCNPJ DocumentType = "cnpj"
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

var (
	nonDigits = regexp.MustCompile(`\D`)

	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Document encapsula um CPF ou CNPJ armazenado apenas com dígitos.
type Document struct {
	value string
}

// NewDocument remove a máscara e valida os dígitos verificadores.
func NewDocument(raw string) (Document, error) {
	d := Document{value: nonDigits.ReplaceAllString(raw, "")}
	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Validate recalcula os dígitos verificadores.
func (d Document) Validate() error {
	switch len(d.value) {
	case cpfLength:
		if !IsValidCPF(d.value) {
			return apperror.NewKindValidationError("document", "invalid CPF")
		}
	case cnpjLength:
		if !IsValidCNPJ(d.value) {
			return apperror.NewKindValidationError("document", "invalid CNPJ")
		}
	default:
		return apperror.NewKindValidationError("document", "document must have 11 (CPF) or 14 (CNPJ) digits")
	}
	return nil
}

func (d Document) Value() string  { return d.value }
func (d Document) String() string { return d.value }

// Type deriva o tipo pelo tamanho; só é chamado em documentos já validados.
func (d Document) Type() DocumentType {
	if len(d.value) == cnpjLength {
		return DocumentTypeCNPJ
	}
	return DocumentTypeCPF
}

// Formatted devolve o documento com a máscara usual.
func (d Document) Formatted() string {
	v := d.value
	switch len(v) {
	case cpfLength:
		return v[0:3] + "." + v[3:6] + "." + v[6:9] + "-" + v[9:11]
	case cnpjLength:
		return v[0:2] + "." + v[2:5] + "." + v[5:8] + "/" + v[8:12] + "-" + v[12:14]
	}
	return v
}

func (d Document) Equals(other Document) bool { return d.value == other.value }

// IsValidCPF valida uma string de 11 dígitos pelo módulo 11.
func IsValidCPF(digits string) bool {
	if len(digits) != cpfLength || !onlyDigits(digits) || repeated(digits) {
		return false
	}
	first := checkDigit(digits[:9], descendingWeights(10, 9))
	second := checkDigit(digits[:10], descendingWeights(11, 10))
	return digits[9] == first && digits[10] == second
}

// IsValidCNPJ valida uma string de 14 dígitos com as tabelas de peso do CNPJ.
func IsValidCNPJ(digits string) bool {
	if len(digits) != cnpjLength || !onlyDigits(digits) || repeated(digits) {
		return false
	}
	first := checkDigit(digits[:12], cnpjFirstWeights)
	second := checkDigit(digits[:13], cnpjSecondWeights)
	return digits[12] == first && digits[13] == second
}

// checkDigit: resto < 2 vira 0, senão 11 - resto.
func checkDigit(digits string, weights []int) byte {
	sum := 0
	for i := range weights {
		sum += int(digits[i]-'0') * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}

func descendingWeights(from, n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = from - i
	}
	return weights
}

func onlyDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func repeated(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}
