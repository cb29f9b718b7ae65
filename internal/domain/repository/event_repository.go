package repository

import (
	"context"

	"hospital-admin-api/internal/domain/entity"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindAll(ctx context.Context) ([]entity.Event, error)
	FindByID(ctx context.Context, id int) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id int) error
}
