package dto

import "time"

// Request DTOs

// CreateAppointmentRequest keeps the historical wire names (heure, statut,
// id_doctor, id_patient) used by existing clients.
type CreateAppointmentRequest struct {
	Heure     time.Time `json:"heure" validate:"required"`
	Type      string    `json:"type" validate:"required"`
	Statut    string    `json:"statut" validate:"omitempty"`
	DoctorID  int       `json:"id_doctor" validate:"required"`
	PatientID int       `json:"id_patient" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID      int              `json:"id"`
	Heure   time.Time        `json:"heure"`
	Type    string           `json:"type"`
	Statut  string           `json:"statut"`
	Doctor  *DoctorResponse  `json:"doctor,omitempty"`
	Patient *PatientResponse `json:"patient,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
