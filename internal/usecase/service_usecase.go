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

var ErrServiceNotFound = errors.New("service not found")

type ServiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetAll(ctx context.Context) (*dto.ServiceListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ServiceResponse, error)
	GetByDoctor(ctx context.Context, doctorID int) (*dto.ServiceListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id int) error
}

type serviceUsecase struct {
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
	doctorRepo  repository.DoctorRepository
}

func NewServiceUsecase(log *logrus.Logger, serviceRepo repository.ServiceRepository, doctorRepo repository.DoctorRepository) ServiceUsecase {
	return &serviceUsecase{
		log:         log,
		serviceRepo: serviceRepo,
		doctorRepo:  doctorRepo,
	}
}

func (u *serviceUsecase) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	service := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		DoctorID:    req.DoctorID,
	}

	if err := u.serviceRepo.Create(ctx, service); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	service.Doctor = *doctor
	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) GetAll(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) GetByID(ctx context.Context, id int) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) GetByDoctor(ctx context.Context, doctorID int) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find services for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) Update(ctx context.Context, id int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(ctx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %d: %+v", *req.DoctorID, err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		service.DoctorID = *req.DoctorID
		service.Doctor = *doctor
	}

	patch.String(&service.Name, req.Name)
	patch.String(&service.Description, req.Description)

	if err := u.serviceRepo.Update(ctx, service); err != nil {
		u.log.Warnf("Failed to update service %d: %+v", id, err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, id int) error {
	service, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return err
	}
	if service == nil {
		return ErrServiceNotFound
	}

	if err := u.serviceRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete service %d: %+v", id, err)
		return err
	}

	return nil
}
