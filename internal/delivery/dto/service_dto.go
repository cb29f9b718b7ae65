package dto

// Request DTOs

type CreateServiceRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	DoctorID    int    `json:"doctorId" validate:"required"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description" validate:"omitempty"`
	DoctorID    *int    `json:"doctorId" validate:"omitempty"`
}

// Response DTOs

type ServiceResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DoctorID    int             `json:"doctorId"`
	Doctor      *DoctorResponse `json:"doctor,omitempty"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
