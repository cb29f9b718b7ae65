package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-admin-api/internal/converter"
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/domain/repository"
	"hospital-admin-api/pkg/patch"

	"github.com/sirupsen/logrus"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventDate = errors.New("invalid date format, use YYYY-MM-DD")
)

type EventUsecase interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, photo *dto.FileUpload) (*dto.EventResponse, error)
	GetAll(ctx context.Context) (*dto.EventListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.EventResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateEventRequest, photo *dto.FileUpload) (*dto.EventResponse, error)
	Delete(ctx context.Context, id int) error
}

type eventUsecase struct {
	log       *logrus.Logger
	eventRepo repository.EventRepository
	fileStore FileStore
}

func NewEventUsecase(log *logrus.Logger, eventRepo repository.EventRepository, fileStore FileStore) EventUsecase {
	return &eventUsecase{
		log:       log,
		eventRepo: eventRepo,
		fileStore: fileStore,
	}
}

func (u *eventUsecase) Create(ctx context.Context, req *dto.CreateEventRequest, photo *dto.FileUpload) (*dto.EventResponse, error) {
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
	}

	if photo != nil {
		name, err := u.fileStore.Save(photo.Content, photo.OriginalName, eventUploadFolder)
		if err != nil {
			u.log.Warnf("Failed to save event photo: %+v", err)
			return nil, err
		}
		event.Photo = publicUploadPath(eventUploadFolder, name)
	}

	if err := u.eventRepo.Create(ctx, event); err != nil {
		u.log.Warnf("Failed to create event: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}

func (u *eventUsecase) GetAll(ctx context.Context) (*dto.EventListResponse, error) {
	events, err := u.eventRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find events: %+v", err)
		return nil, err
	}

	return &dto.EventListResponse{
		Events: converter.EventsToResponses(events),
		Total:  len(events),
	}, nil
}

func (u *eventUsecase) GetByID(ctx context.Context, id int) (*dto.EventResponse, error) {
	event, err := u.eventRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find event %d: %+v", id, err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	return converter.EventToResponse(event), nil
}

func (u *eventUsecase) Update(ctx context.Context, id int, req *dto.UpdateEventRequest, photo *dto.FileUpload) (*dto.EventResponse, error) {
	event, err := u.eventRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find event %d: %+v", id, err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	patch.String(&event.Title, req.Title)
	patch.String(&event.Description, req.Description)
	patch.String(&event.Location, req.Location)

	if photo != nil {
		name, err := u.fileStore.Save(photo.Content, photo.OriginalName, eventUploadFolder)
		if err != nil {
			u.log.Warnf("Failed to save event photo: %+v", err)
			return nil, err
		}
		event.Photo = publicUploadPath(eventUploadFolder, name)
	}

	if err := u.eventRepo.Update(ctx, event); err != nil {
		u.log.Warnf("Failed to update event %d: %+v", id, err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}

func (u *eventUsecase) Delete(ctx context.Context, id int) error {
	event, err := u.eventRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find event %d: %+v", id, err)
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	if err := u.eventRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete event %d: %+v", id, err)
		return err
	}

	return nil
}

func parseEventDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidEventDate
	}
	return date, nil
}
