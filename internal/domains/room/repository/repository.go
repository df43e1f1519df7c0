package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/upstream"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
)

// Room is the read adapter over the upstream room-service, plus the one
// status mutation the back office is allowed to issue.
type Room interface {
	List(ctx context.Context, filter dto.Filter) ([]model.Room, error)
	Get(ctx context.Context, id int64) (model.Room, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type repositoryImpl struct {
	client upstream.Client
}

func New(client upstream.Client) Room {
	return &repositoryImpl{
		client: client,
	}
}

func (repo *repositoryImpl) List(ctx context.Context, filter dto.Filter) ([]model.Room, error) {
	var rooms []model.Room

	if err := repo.client.Get(ctx, upstream.ServiceRoom, "/rooms", filter.Values(), &rooms); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.Room, error) {
	var room model.Room

	if err := repo.client.Get(ctx, upstream.ServiceRoom, fmt.Sprintf("/rooms/%d", id), nil, &room); err != nil {
		return model.Room{}, fmt.Errorf("failed to get room %d: %w", id, err)
	}

	return room, nil
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	body := map[string]any{
		"roomId":    id,
		"newStatus": status,
	}

	if err := repo.client.Put(ctx, upstream.ServiceRoom, fmt.Sprintf("/rooms/%d/status", id), body); err != nil {
		return fmt.Errorf("failed to update room %d status: %w", id, err)
	}

	return nil
}
