package clientrepo

import (
	"gooficina/internal/domain"
	"gooficina/internal/domain/vo"
)

// ClientRecord é a linha da tabela clients. Também é o formato gravado no cache.
type ClientRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Document     string  `json:"document"`
	DocumentType string  `json:"document_type"`
	Street       *string `json:"street,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Observations *string `json:"observations,omitempty"`
}

// ClientMapper converte ClientRecord <-> domain.Client.
type ClientMapper struct{}

var _ domain.Mapper[*domain.Client, ClientRecord] = ClientMapper{}

func (ClientMapper) ToDomain(r ClientRecord) (*domain.Client, error) {
	doc, err := vo.NewDocument(r.Document)
	if err != nil {
		return nil, err
	}

	p := domain.ClientParams{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Document:     doc,
		Observations: deref(r.Observations),
	}

	// Endereço só existe com os quatro campos; linhas parciais são tratadas como sem endereço
	if r.Street != nil && r.City != nil && r.State != nil && r.ZipCode != nil {
		addr, err := vo.NewAddress(*r.Street, *r.City, *r.State, *r.ZipCode)
		if err != nil {
			return nil, err
		}
		p.Address = &addr
	}

	if r.Phone != nil && *r.Phone != "" {
		phone, err := vo.NewPhone(*r.Phone)
		if err != nil {
			return nil, err
		}
		p.Phone = &phone
	}

	return domain.NewClient(p)
}

func (ClientMapper) ToPersistence(c *domain.Client) ClientRecord {
	r := ClientRecord{
		ID:           c.ID(),
		Name:         c.Name(),
		Email:        c.Email(),
		Document:     c.Document(),
		DocumentType: string(c.DocumentType()),
		Phone:        optional(c.Phone()),
		Observations: optional(c.Observations()),
	}
	if addr, ok := c.Address(); ok {
		r.Street = optional(addr.Street())
		r.City = optional(addr.City())
		r.State = optional(addr.State())
		r.ZipCode = optional(addr.ZipCode())
	}
	return r
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
