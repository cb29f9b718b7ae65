package usecase

import (
	"context"
	"errors"

	"hospital-admin-api/internal/converter"
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/domain/repository"
	"hospital-admin-api/pkg/patch"

	"github.com/sirupsen/logrus"
)

var ErrHistoriqueNotFound = errors.New("historique not found")

type HistoriqueUsecase interface {
	Create(ctx context.Context, req *dto.CreateHistoriqueRequest, photo *dto.FileUpload) (*dto.HistoriqueResponse, error)
	GetAll(ctx context.Context) (*dto.HistoriqueListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.HistoriqueResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateHistoriqueRequest, photo *dto.FileUpload) (*dto.HistoriqueResponse, error)
	Delete(ctx context.Context, id int) error
}

type historiqueUsecase struct {
	log            *logrus.Logger
	historiqueRepo repository.HistoriqueRepository
	fileStore      FileStore
}

func NewHistoriqueUsecase(log *logrus.Logger, historiqueRepo repository.HistoriqueRepository, fileStore FileStore) HistoriqueUsecase {
	return &historiqueUsecase{
		log:            log,
		historiqueRepo: historiqueRepo,
		fileStore:      fileStore,
	}
}

func (u *historiqueUsecase) Create(ctx context.Context, req *dto.CreateHistoriqueRequest, photo *dto.FileUpload) (*dto.HistoriqueResponse, error) {
	historique := &entity.Historique{
		Title:       req.Title,
		Description: req.Description,
	}

	if photo != nil {
		name, err := u.fileStore.Save(photo.Content, photo.OriginalName, historiqueUploadFolder)
		if err != nil {
			u.log.Warnf("Failed to save historique photo: %+v", err)
			return nil, err
		}
		historique.Photo = publicUploadPath(historiqueUploadFolder, name)
	}

	if err := u.historiqueRepo.Create(ctx, historique); err != nil {
		u.log.Warnf("Failed to create historique: %+v", err)
		return nil, err
	}

	return converter.HistoriqueToResponse(historique), nil
}

func (u *historiqueUsecase) GetAll(ctx context.Context) (*dto.HistoriqueListResponse, error) {
	historiques, err := u.historiqueRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find historiques: %+v", err)
		return nil, err
	}

	return &dto.HistoriqueListResponse{
		Historiques: converter.HistoriquesToResponses(historiques),
		Total:       len(historiques),
	}, nil
}

func (u *historiqueUsecase) GetByID(ctx context.Context, id int) (*dto.HistoriqueResponse, error) {
	historique, err := u.historiqueRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find historique %d: %+v", id, err)
		return nil, err
	}
	if historique == nil {
		return nil, ErrHistoriqueNotFound
	}

	return converter.HistoriqueToResponse(historique), nil
}

func (u *historiqueUsecase) Update(ctx context.Context, id int, req *dto.UpdateHistoriqueRequest, photo *dto.FileUpload) (*dto.HistoriqueResponse, error) {
	historique, err := u.historiqueRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find historique %d: %+v", id, err)
		return nil, err
	}
	if historique == nil {
		return nil, ErrHistoriqueNotFound
	}

	patch.String(&historique.Title, req.Title)
	patch.String(&historique.Description, req.Description)

	if photo != nil {
		name, err := u.fileStore.Save(photo.Content, photo.OriginalName, historiqueUploadFolder)
		if err != nil {
			u.log.Warnf("Failed to save historique photo: %+v", err)
			return nil, err
		}
		historique.Photo = publicUploadPath(historiqueUploadFolder, name)
	}

	if err := u.historiqueRepo.Update(ctx, historique); err != nil {
		u.log.Warnf("Failed to update historique %d: %+v", id, err)
		return nil, err
	}

	return converter.HistoriqueToResponse(historique), nil
}

func (u *historiqueUsecase) Delete(ctx context.Context, id int) error {
	historique, err := u.historiqueRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find historique %d: %+v", id, err)
		return err
	}
	if historique == nil {
		return ErrHistoriqueNotFound
	}

	if err := u.historiqueRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete historique %d: %+v", id, err)
		return err
	}

	return nil
}
