package repository

import (
	"context"

	"hospital-admin-api/internal/domain/entity"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindAll(ctx context.Context) ([]entity.Service, error)
	FindByID(ctx context.Context, id int) (*entity.Service, error)
	FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id int) error
}
