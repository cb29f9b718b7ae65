package dto

// Request DTOs

type CreateScheduleRequest struct {
	DoctorID    int    `json:"doctorId" validate:"required"`
	Day         string `json:"day" validate:"required"`       // Format: YYYY-MM-DD
	StartTime   string `json:"startTime" validate:"required"` // Format: HH:MM
	EndTime     string `json:"endTime" validate:"required"`   // Format: HH:MM
	IsAvailable *bool  `json:"isAvailable"`                   // defaults to true
}

type UpdateScheduleRequest struct {
	Day         *string `json:"day" validate:"omitempty"`
	StartTime   *string `json:"startTime" validate:"omitempty"`
	EndTime     *string `json:"endTime" validate:"omitempty"`
	IsAvailable *bool   `json:"isAvailable" validate:"omitempty"`
}

// Response DTOs

type ScheduleResponse struct {
	ID          int             `json:"id"`
	DoctorID    int             `json:"doctorId"`
	Doctor      *DoctorResponse `json:"doctor,omitempty"`
	Day         string          `json:"day"`
	StartTime   string          `json:"startTime"`
	EndTime     string          `json:"endTime"`
	IsAvailable bool            `json:"isAvailable"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
