package clientusecase

import (
	"context"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
)

// UpdateClientInput carrega apenas os campos a alterar; nil mantém o valor atual.
type UpdateClientInput struct {
	ID           string        `json:"-"`
	Name         *string       `json:"name,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Document     *string       `json:"document,omitempty"`
	Address      *AddressInput `json:"address,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Observations *string       `json:"observations,omitempty"`
}

type UpdateClient struct {
	repo   domain.ClientRepository
	logger logger.Logger
}

func NewUpdateClient(repo domain.ClientRepository, log logger.Logger) *UpdateClient {
	return &UpdateClient{repo: repo, logger: log}
}

func (uc *UpdateClient) Execute(ctx context.Context, in UpdateClientInput) error {
	client, err := findClient(ctx, uc.repo, in.ID)
	if err != nil {
		return err
	}

	if in.Name != nil {
		if client, err = client.WithName(*in.Name); err != nil {
			return err
		}
	}
	if in.Email != nil {
		if client, err = client.WithEmail(*in.Email); err != nil {
			return err
		}
	}
	if in.Document != nil {
		if client, err = client.WithDocument(*in.Document); err != nil {
			return err
		}
	}
	if in.Address != nil {
		addr, err := in.Address.toVO()
		if err != nil {
			return err
		}
		if client, err = client.WithAddress(addr); err != nil {
			return err
		}
	}
	if in.Phone != nil {
		if client, err = client.WithPhone(*in.Phone); err != nil {
			return err
		}
	}
	if in.Observations != nil {
		if client, err = client.WithObservations(*in.Observations); err != nil {
			return err
		}
	}

	if err := uc.repo.Update(ctx, client); err != nil {
		uc.logger.Error("Falha ao atualizar cliente.", err)
		return err
	}

	uc.logger.Info("Cliente atualizado com sucesso.", map[string]interface{}{"id": client.ID()})
	return nil
}

// findClient valida o formato do ID e converte "não encontrado" em NotFoundError.
func findClient(ctx context.Context, repo domain.ClientRepository, id string) (*domain.Client, error) {
	if !domain.IsValidID(id) {
		return nil, apperror.NewKindValidationError("client", "O ID do cliente deve ser um ULID válido.")
	}

	client, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewResourceNotFoundError("client", "ID "+id)
	}
	return client, nil
}
