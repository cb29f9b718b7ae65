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
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrInvalidScheduleDay = errors.New("invalid day format, use YYYY-MM-DD")
	ErrInvalidTimeFormat  = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange   = errors.New("end time must be after start time")
	ErrScheduleOverlap    = errors.New("schedule overlaps an existing slot for this doctor")
)

// SlotCache caches available-slots lookups per doctor and day. Cache faults
// are never fatal; callers fall back to the repository.
type SlotCache interface {
	Get(ctx context.Context, doctorID int, day time.Time) ([]entity.Schedule, bool, error)
	Set(ctx context.Context, doctorID int, day time.Time, schedules []entity.Schedule) error
	Invalidate(ctx context.Context, doctorID int, day time.Time) error
}

type ScheduleUsecase interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetAll(ctx context.Context) (*dto.ScheduleListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ScheduleResponse, error)
	GetByDoctor(ctx context.Context, doctorID int) (*dto.ScheduleListResponse, error)
	GetAvailableSlots(ctx context.Context, doctorID int, date string) (*dto.ScheduleListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id int) error
}

type scheduleUsecase struct {
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	doctorRepo   repository.DoctorRepository
	slotCache    SlotCache
}

func NewScheduleUsecase(
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	doctorRepo repository.DoctorRepository,
	slotCache SlotCache,
) ScheduleUsecase {
	return &scheduleUsecase{
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		slotCache:    slotCache,
	}
}

func (u *scheduleUsecase) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	day, err := parseDay(req.Day)
	if err != nil {
		return nil, err
	}
	startTime, endTime, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	// Two slots for the same doctor and day must not intersect
	overlapping, err := u.scheduleRepo.FindOverlapping(ctx, req.DoctorID, day, startTime, endTime, 0)
	if err != nil {
		u.log.Warnf("Failed to check schedule overlap: %+v", err)
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ErrScheduleOverlap
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	schedule := &entity.Schedule{
		DoctorID:    req.DoctorID,
		Day:         day,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: isAvailable,
	}

	if err := u.scheduleRepo.Create(ctx, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	u.invalidateSlots(ctx, schedule.DoctorID, schedule.Day)

	schedule.Doctor = *doctor
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetAll(ctx context.Context) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) GetByID(ctx context.Context, id int) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetByDoctor(ctx context.Context, doctorID int) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

// GetAvailableSlots matches the stored day by equality; callers must send the
// date normalized to YYYY-MM-DD.
func (u *scheduleUsecase) GetAvailableSlots(ctx context.Context, doctorID int, date string) (*dto.ScheduleListResponse, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	if cached, hit, cacheErr := u.slotCache.Get(ctx, doctorID, day); cacheErr != nil {
		u.log.Warnf("Slot cache read failed for doctor %d (non-fatal): %+v", doctorID, cacheErr)
	} else if hit {
		return &dto.ScheduleListResponse{
			Schedules: converter.SchedulesToResponses(cached),
			Total:     len(cached),
		}, nil
	}

	schedules, err := u.scheduleRepo.FindAvailable(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find available slots for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	if cacheErr := u.slotCache.Set(ctx, doctorID, day, schedules); cacheErr != nil {
		u.log.Warnf("Slot cache write failed for doctor %d (non-fatal): %+v", doctorID, cacheErr)
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) Update(ctx context.Context, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	previousDay := schedule.Day

	if req.Day != nil {
		day, err := parseDay(*req.Day)
		if err != nil {
			return nil, err
		}
		schedule.Day = day
	}
	// Patched times are normalized to zero-padded HH:MM, same as on create,
	// so the lexical comparisons below stay valid.
	if req.StartTime != nil {
		normalized, err := normalizeTime(*req.StartTime)
		if err != nil {
			return nil, err
		}
		schedule.StartTime = normalized
	}
	if req.EndTime != nil {
		normalized, err := normalizeTime(*req.EndTime)
		if err != nil {
			return nil, err
		}
		schedule.EndTime = normalized
	}
	patch.Bool(&schedule.IsAvailable, req.IsAvailable)

	if schedule.EndTime <= schedule.StartTime {
		return nil, ErrInvalidTimeRange
	}

	overlapping, err := u.scheduleRepo.FindOverlapping(ctx, schedule.DoctorID, schedule.Day, schedule.StartTime, schedule.EndTime, schedule.ID)
	if err != nil {
		u.log.Warnf("Failed to check schedule overlap: %+v", err)
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ErrScheduleOverlap
	}

	if err := u.scheduleRepo.Update(ctx, schedule); err != nil {
		u.log.Warnf("Failed to update schedule %d: %+v", id, err)
		return nil, err
	}

	u.invalidateSlots(ctx, schedule.DoctorID, previousDay)
	if !schedule.Day.Equal(previousDay) {
		u.invalidateSlots(ctx, schedule.DoctorID, schedule.Day)
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) Delete(ctx context.Context, id int) error {
	schedule, err := u.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", id, err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	if err := u.scheduleRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete schedule %d: %+v", id, err)
		return err
	}

	u.invalidateSlots(ctx, schedule.DoctorID, schedule.Day)
	return nil
}

func (u *scheduleUsecase) invalidateSlots(ctx context.Context, doctorID int, day time.Time) {
	if err := u.slotCache.Invalidate(ctx, doctorID, day); err != nil {
		u.log.Warnf("Slot cache invalidation failed for doctor %d (non-fatal): %+v", doctorID, err)
	}
}

func parseDay(value string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidScheduleDay
	}
	return day, nil
}

// normalizeTime validates a wall-clock value and returns it zero-padded
// ("9:00" becomes "09:00") so string comparison orders times correctly.
func normalizeTime(value string) (string, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return "", ErrInvalidTimeFormat
	}
	return parsed.Format("15:04"), nil
}

// parseTimeRange validates and normalizes both times to zero-padded HH:MM.
func parseTimeRange(start, end string) (string, string, error) {
	startTime, err := normalizeTime(start)
	if err != nil {
		return "", "", err
	}
	endTime, err := normalizeTime(end)
	if err != nil {
		return "", "", err
	}
	if endTime <= startTime {
		return "", "", ErrInvalidTimeRange
	}
	return startTime, endTime, nil
}
