package converter

import (
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
)

func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	response := &dto.ScheduleResponse{
		ID:          schedule.ID,
		DoctorID:    schedule.DoctorID,
		Day:         schedule.Day.Format("2006-01-02"),
		StartTime:   schedule.StartTime,
		EndTime:     schedule.EndTime,
		IsAvailable: schedule.IsAvailable,
	}

	// Include doctor info when the relation was loaded
	if schedule.Doctor.ID != 0 {
		response.Doctor = DoctorToResponse(&schedule.Doctor)
	}

	return response
}

func SchedulesToResponses(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return responses
}
