package repository

import (
	"context"

	"hospital-admin-api/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id int) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id int) error
}
