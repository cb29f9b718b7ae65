package dto

// Request DTOs

type CreatePatientRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Age   *int   `json:"age" validate:"required,gte=0"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,e164"`
}

type UpdatePatientRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2"`
	Age   *int    `json:"age" validate:"omitempty,gte=0"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,e164"`
}

// Response DTOs

type PatientResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Photo string `json:"photo,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
