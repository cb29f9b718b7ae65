package entity

import "time"

// AppointmentStatusPlanned is the status assigned when none is supplied.
// Status values are caller-defined strings; no transition rules are enforced.
const AppointmentStatusPlanned = "planned"

// Appointment links a doctor, a patient and a point in time to a status
type Appointment struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ScheduledAt time.Time `gorm:"type:timestamp;not null" json:"scheduled_at"`
	Type        string    `gorm:"type:varchar(255);not null" json:"type"`
	Status      string    `gorm:"type:varchar(255);not null;default:'planned'" json:"status"`
	DoctorID    int       `gorm:"column:id_doctor;not null;index" json:"doctor_id"`
	PatientID   int       `gorm:"column:id_patient;not null;index" json:"patient_id"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
