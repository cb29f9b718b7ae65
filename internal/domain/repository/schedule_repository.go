package repository

import (
	"context"
	"time"

	"hospital-admin-api/internal/domain/entity"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	FindAll(ctx context.Context) ([]entity.Schedule, error)
	FindByID(ctx context.Context, id int) (*entity.Schedule, error)
	FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Schedule, error)
	// FindAvailable matches the stored day by equality, not by range
	FindAvailable(ctx context.Context, doctorID int, day time.Time) ([]entity.Schedule, error)
	// FindOverlapping returns slots for the same doctor and day whose
	// [start, end) range intersects the given one, excluding excludeID
	FindOverlapping(ctx context.Context, doctorID int, day time.Time, startTime, endTime string, excludeID int) ([]entity.Schedule, error)
	Update(ctx context.Context, schedule *entity.Schedule) error
	Delete(ctx context.Context, id int) error
}
