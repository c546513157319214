package clientusecase

import (
	"context"

	"gooficina/internal/domain"
	"gooficina/internal/domain/vo"
	apperror "gooficina/internal/errors"
)

type FindClientByID struct {
	repo domain.ClientRepository
}

func NewFindClientByID(repo domain.ClientRepository) *FindClientByID {
	return &FindClientByID{repo: repo}
}

func (uc *FindClientByID) Execute(ctx context.Context, id string) (map[string]any, error) {
	client, err := findClient(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return client.ToMap(), nil
}

// FindClientByDocument aceita o documento com ou sem máscara.
type FindClientByDocument struct {
	repo domain.ClientRepository
}

func NewFindClientByDocument(repo domain.ClientRepository) *FindClientByDocument {
	return &FindClientByDocument{repo: repo}
}

func (uc *FindClientByDocument) Execute(ctx context.Context, document string) (map[string]any, error) {
	doc, err := vo.NewDocument(document)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.FindByDocument(ctx, doc.Value())
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewResourceNotFoundError("client", "document "+doc.Value())
	}
	return client.ToMap(), nil
}
