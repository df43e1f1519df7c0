package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/upstream"
	"frontdesk/internal/domains/guest/model"
)

// Guest is the read adapter over the upstream user-service.
type Guest interface {
	List(ctx context.Context) ([]model.Guest, error)
	Get(ctx context.Context, id string) (model.Guest, error)
}

type repositoryImpl struct {
	client upstream.Client
}

func New(client upstream.Client) Guest {
	return &repositoryImpl{
		client: client,
	}
}

func (repo *repositoryImpl) List(ctx context.Context) ([]model.Guest, error) {
	var guests []model.Guest

	if err := repo.client.Get(ctx, upstream.ServiceUser, "/users", nil, &guests); err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	return guests, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (model.Guest, error) {
	var guest model.Guest

	if err := repo.client.Get(ctx, upstream.ServiceUser, "/users/"+id, nil, &guest); err != nil {
		return model.Guest{}, fmt.Errorf("failed to get guest %s: %w", id, err)
	}

	return guest, nil
}
