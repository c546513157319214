package domain

import (
	"context"
	"net/mail"
	"strings"

	"gooficina/internal/domain/vo"
	apperror "gooficina/internal/errors"
)

// Client é o cliente da oficina (pessoa física ou jurídica).
// A entidade é imutável: os métodos WithX devolvem uma nova instância
// com o mesmo ID e todas as invariantes revalidadas.
type Client struct {
	id           string
	name         string
	email        string
	document     vo.Document
	address      *vo.Address
	phone        *vo.Phone
	observations string
}

// ClientParams é usado para reconstruir um Client com ID conhecido (mappers).
type ClientParams struct {
	ID           string
	Name         string
	Email        string
	Document     vo.Document
	Address      *vo.Address
	Phone        *vo.Phone
	Observations string
}

// CreateClient cria um novo cliente com ID gerado.
func CreateClient(name, email, document string) (*Client, error) {
	doc, err := vo.NewDocument(document)
	if err != nil {
		return nil, err
	}
	return NewClient(ClientParams{Name: name, Email: email, Document: doc})
}

// NewClient monta um Client a partir de parâmetros; gera ID quando ausente.
func NewClient(p ClientParams) (*Client, error) {
	id := p.ID
	if id == "" {
		id = NewID()
	}
	return buildClient(Client{
		id:           id,
		name:         p.Name,
		email:        p.Email,
		document:     p.Document,
		address:      p.Address,
		phone:        p.Phone,
		observations: p.Observations,
	})
}

// buildClient é o único caminho de construção: normaliza e valida tudo.
func buildClient(c Client) (*Client, error) {
	c.name = strings.TrimSpace(c.name)
	c.email = strings.ToLower(strings.TrimSpace(c.email))

	if c.name == "" {
		return nil, apperror.NewKindValidationError("client", "Name is required")
	}
	if c.email == "" {
		return nil, apperror.NewKindValidationError("client", "Email is required")
	}
	if addr, err := mail.ParseAddress(c.email); err != nil || addr.Address != c.email {
		return nil, apperror.NewKindValidationError("client", "Email must be a valid address")
	}
	if err := c.document.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Client) ID() string                   { return c.id }
func (c *Client) Name() string                 { return c.name }
func (c *Client) Email() string                { return c.email }
func (c *Client) Document() string             { return c.document.Value() }
func (c *Client) DocumentType() vo.DocumentType { return c.document.Type() }
func (c *Client) Observations() string         { return c.observations }

// Phone devolve apenas os dígitos, ou "" quando não informado.
func (c *Client) Phone() string {
	if c.phone == nil {
		return ""
	}
	return c.phone.Value()
}

// Address devolve o endereço e se ele foi informado.
func (c *Client) Address() (vo.Address, bool) {
	if c.address == nil {
		return vo.Address{}, false
	}
	return *c.address, true
}

func (c *Client) WithName(name string) (*Client, error) {
	next := *c
	next.name = name
	return buildClient(next)
}

func (c *Client) WithEmail(email string) (*Client, error) {
	next := *c
	next.email = email
	return buildClient(next)
}

func (c *Client) WithDocument(document string) (*Client, error) {
	doc, err := vo.NewDocument(document)
	if err != nil {
		return nil, err
	}
	next := *c
	next.document = doc
	return buildClient(next)
}

func (c *Client) WithAddress(address vo.Address) (*Client, error) {
	next := *c
	next.address = &address
	return buildClient(next)
}

func (c *Client) WithPhone(phone string) (*Client, error) {
	p, err := vo.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	next := *c
	next.phone = &p
	return buildClient(next)
}

func (c *Client) WithObservations(observations string) (*Client, error) {
	next := *c
	next.observations = observations
	return buildClient(next)
}

// ToMap é o contrato de saída dos use cases.
func (c *Client) ToMap() map[string]any {
	var address any
	if c.address != nil {
		address = c.address.ToMap()
	}
	return map[string]any{
		"id":            c.id,
		"name":          c.name,
		"email":         c.email,
		"document":      c.document.Value(),
		"document_type": string(c.document.Type()),
		"address":       address,
		"phone":         c.Phone(),
		"observations":  c.observations,
	}
}

// ClientRepository é o contrato de persistência de clientes.
// Os finders devolvem (nil, nil) quando nada é encontrado.
type ClientRepository interface {
	Save(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Client, error)
	FindAll(ctx context.Context, req SearchRequest) (SearchResponse, error)
	FindByDocument(ctx context.Context, document string) (*Client, error)
}
