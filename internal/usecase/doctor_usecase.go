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

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest, photo *dto.FileUpload) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context) (*dto.DoctorListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateDoctorRequest, photo *dto.FileUpload) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id int) error
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	fileStore  FileStore
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository, fileStore FileStore) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		fileStore:  fileStore,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest, photo *dto.FileUpload) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
	}

	// The file is written before the row so a failure here leaves no
	// dangling path reference, only at worst an orphaned file.
	if photo != nil {
		name, err := u.fileStore.Save(photo.Content, photo.OriginalName, doctorUploadFolder)
		if err != nil {
			u.log.Warnf("Failed to save doctor photo: %+v", err)
			return nil, err
		}
		doctor.Photo = publicUploadPath(doctorUploadFolder, name)
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id int, req *dto.UpdateDoctorRequest, photo *dto.FileUpload) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patch.String(&doctor.Name, req.Name)
	patch.String(&doctor.Specialization, req.Specialization)
	patch.String(&doctor.Phone, req.Phone)
	patch.String(&doctor.Email, req.Email)

	if photo != nil {
		name, err := u.fileStore.Save(photo.Content, photo.OriginalName, doctorUploadFolder)
		if err != nil {
			u.log.Warnf("Failed to save doctor photo: %+v", err)
			return nil, err
		}
		// The previous file is left in place; paths are never reused.
		doctor.Photo = publicUploadPath(doctorUploadFolder, name)
	}

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %d: %+v", id, err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id int) error {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if err := u.doctorRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}

	return nil
}
