package repository

import (
	"context"

	"hospital-admin-api/internal/domain/entity"
)

type HistoriqueRepository interface {
	Create(ctx context.Context, historique *entity.Historique) error
	// FindAll returns entries sorted newest first
	FindAll(ctx context.Context) ([]entity.Historique, error)
	FindByID(ctx context.Context, id int) (*entity.Historique, error)
	Update(ctx context.Context, historique *entity.Historique) error
	Delete(ctx context.Context, id int) error
}
