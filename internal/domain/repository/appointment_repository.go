package repository

import (
	"context"

	"hospital-admin-api/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	// FindAll and FindByID load the doctor and patient relations eagerly
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id int) error
}
