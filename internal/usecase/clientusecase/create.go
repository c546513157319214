// Package clientusecase reúne os casos de uso do agregado Client.
// Cada caso de uso expõe um único método Execute.
package clientusecase

import (
	"context"

	"gooficina/internal/domain"
	"gooficina/internal/domain/vo"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
)

// AddressInput é o endereço opcional recebido na criação/atualização.
type AddressInput struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

func (a AddressInput) toVO() (vo.Address, error) {
	return vo.NewAddress(a.Street, a.City, a.State, a.ZipCode)
}

// CreateClientInput é o payload de criação. Campos ponteiro são opcionais.
type CreateClientInput struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Document     string        `json:"document"`
	Address      *AddressInput `json:"address,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Observations *string       `json:"observations,omitempty"`
}

// CreateClient cadastra um cliente ou devolve o ID do cliente que já possui o documento.
type CreateClient struct {
	repo   domain.ClientRepository
	logger logger.Logger
}

func NewCreateClient(repo domain.ClientRepository, log logger.Logger) *CreateClient {
	return &CreateClient{repo: repo, logger: log}
}

// Execute devolve o ID do cliente criado ou do já existente.
func (uc *CreateClient) Execute(ctx context.Context, in CreateClientInput) (string, error) {
	// 1. Normaliza o documento antes da busca de duplicidade
	doc, err := vo.NewDocument(in.Document)
	if err != nil {
		return "", err
	}

	// 2. Dedup: mesmo documento, mesmo cliente
	existing, err := uc.repo.FindByDocument(ctx, doc.Value())
	if err != nil {
		uc.logger.Error("Falha ao buscar cliente por documento.", err)
		return "", err
	}
	if existing != nil {
		uc.logger.Info("Cliente já cadastrado para o documento.", map[string]interface{}{"id": existing.ID()})
		return existing.ID(), nil
	}

	// 3. Monta a entidade e aplica os atributos opcionais
	client, err := domain.CreateClient(in.Name, in.Email, doc.Value())
	if err != nil {
		return "", err
	}
	if in.Address != nil {
		addr, err := in.Address.toVO()
		if err != nil {
			return "", err
		}
		if client, err = client.WithAddress(addr); err != nil {
			return "", err
		}
	}
	if in.Phone != nil {
		if client, err = client.WithPhone(*in.Phone); err != nil {
			return "", err
		}
	}
	if in.Observations != nil {
		if client, err = client.WithObservations(*in.Observations); err != nil {
			return "", err
		}
	}

	// 4. Persiste. Um Conflict aqui significa que outra requisição criou o
	// mesmo documento entre a busca e o insert: devolvemos o vencedor.
	if err := uc.repo.Save(ctx, client); err != nil {
		if apperror.IsConflict(err) {
			winner, findErr := uc.repo.FindByDocument(ctx, doc.Value())
			if findErr == nil && winner != nil {
				uc.logger.Warn("Criação concorrente de cliente resolvida pelo índice único.", map[string]interface{}{"id": winner.ID()})
				return winner.ID(), nil
			}
		}
		uc.logger.Error("Falha ao salvar cliente.", err)
		return "", err
	}

	uc.logger.Info("Cliente criado com sucesso.", map[string]interface{}{"id": client.ID()})
	return client.ID(), nil
}
