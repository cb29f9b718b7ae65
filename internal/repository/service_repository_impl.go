package repository

import (
	"context"
	"errors"

	"hospital-admin-api/internal/domain/entity"
	domainRepo "hospital-admin-api/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) domainRepo.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	return r.db.WithContext(ctx).Omit("Doctor").Create(service).Error
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]entity.Service, error) {
	var services []entity.Service
	if err := r.db.WithContext(ctx).Preload("Doctor").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id int) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).Preload("Doctor").Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Service, error) {
	var services []entity.Service
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("doctor_id = ?", doctorID).
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	return r.db.WithContext(ctx).Omit("Doctor").Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Service{}).Error
}
