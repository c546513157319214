package clientusecase

import (
	"context"

	"gooficina/internal/domain"
	"gooficina/internal/pkg/logger"
)

type DeleteClient struct {
	repo   domain.ClientRepository
	logger logger.Logger
}

func NewDeleteClient(repo domain.ClientRepository, log logger.Logger) *DeleteClient {
	return &DeleteClient{repo: repo, logger: log}
}

func (uc *DeleteClient) Execute(ctx context.Context, id string) error {
	if _, err := findClient(ctx, uc.repo, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("Falha ao remover cliente.", err)
		return err
	}

	uc.logger.Info("Cliente removido.", map[string]interface{}{"id": id})
	return nil
}
