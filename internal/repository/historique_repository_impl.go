package repository

import (
	"context"
	"errors"

	"hospital-admin-api/internal/domain/entity"
	domainRepo "hospital-admin-api/internal/domain/repository"

	"gorm.io/gorm"
)

type historiqueRepository struct {
	db *gorm.DB
}

func NewHistoriqueRepository(db *gorm.DB) domainRepo.HistoriqueRepository {
	return &historiqueRepository{db: db}
}

func (r *historiqueRepository) Create(ctx context.Context, historique *entity.Historique) error {
	return r.db.WithContext(ctx).Create(historique).Error
}

func (r *historiqueRepository) FindAll(ctx context.Context) ([]entity.Historique, error) {
	var historiques []entity.Historique
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&historiques).Error
	if err != nil {
		return nil, err
	}
	return historiques, nil
}

func (r *historiqueRepository) FindByID(ctx context.Context, id int) (*entity.Historique, error) {
	var historique entity.Historique
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&historique).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &historique, nil
}

func (r *historiqueRepository) Update(ctx context.Context, historique *entity.Historique) error {
	return r.db.WithContext(ctx).Save(historique).Error
}

func (r *historiqueRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Historique{}).Error
}
