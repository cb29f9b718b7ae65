package converter

import (
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:     appointment.ID,
		Heure:  appointment.ScheduledAt,
		Type:   appointment.Type,
		Statut: appointment.Status,
	}

	if appointment.Doctor.ID != 0 {
		response.Doctor = DoctorToResponse(&appointment.Doctor)
	}
	if appointment.Patient.ID != 0 {
		response.Patient = PatientToResponse(&appointment.Patient)
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
