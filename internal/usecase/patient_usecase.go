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

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest, photo *dto.FileUpload) (*dto.PatientResponse, error)
	GetAll(ctx context.Context) (*dto.PatientListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePatientRequest, photo *dto.FileUpload) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int) error
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	fileStore   FileStore
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, fileStore FileStore) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		fileStore:   fileStore,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest, photo *dto.FileUpload) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:  req.Name,
		Age:   *req.Age,
		Email: req.Email,
		Phone: req.Phone,
	}

	if photo != nil {
		name, err := u.fileStore.Save(photo.Content, photo.OriginalName, patientUploadFolder)
		if err != nil {
			u.log.Warnf("Failed to save patient photo: %+v", err)
			return nil, err
		}
		patient.Photo = publicUploadPath(patientUploadFolder, name)
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int, req *dto.UpdatePatientRequest, photo *dto.FileUpload) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patch.String(&patient.Name, req.Name)
	patch.Int(&patient.Age, req.Age)
	patch.String(&patient.Email, req.Email)
	patch.String(&patient.Phone, req.Phone)

	if photo != nil {
		name, err := u.fileStore.Save(photo.Content, photo.OriginalName, patientUploadFolder)
		if err != nil {
			u.log.Warnf("Failed to save patient photo: %+v", err)
			return nil, err
		}
		patient.Photo = publicUploadPath(patientUploadFolder, name)
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}

	return nil
}
