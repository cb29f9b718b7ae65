package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Specialization string `json:"specialization" validate:"required"`
	Phone          string `json:"phone" validate:"required,e164"`
	Email          string `json:"email" validate:"required,email"`
}

type UpdateDoctorRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2"`
	Specialization *string `json:"specialization" validate:"omitempty"`
	Phone          *string `json:"phone" validate:"omitempty,e164"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type DoctorResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Photo          string `json:"photo,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
