package repository

import (
	"context"
	"errors"
	"time"

	"hospital-admin-api/internal/domain/entity"
	domainRepo "hospital-admin-api/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) domainRepo.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) FindAll(ctx context.Context) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Order("day ASC, start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := r.db.WithContext(ctx).Preload("Doctor").Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("doctor_id = ?", doctorID).
		Order("day ASC, start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindAvailable(ctx context.Context, doctorID int, day time.Time) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("doctor_id = ? AND day = ? AND is_available = ?", doctorID, day, true).
		Order("start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindOverlapping(ctx context.Context, doctorID int, day time.Time, startTime, endTime string, excludeID int) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	// Zero-padded HH:MM strings compare correctly as text
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND day = ? AND start_time < ? AND end_time > ? AND id <> ?",
			doctorID, day, endTime, startTime, excludeID).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.Schedule) error {
	return r.db.WithContext(ctx).Omit("Doctor").Save(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Schedule{}).Error
}
