package entity

import "time"

// Schedule represents a bookable time slot belonging to exactly one doctor.
// StartTime and EndTime are wall-clock "HH:MM" strings; Day carries the
// calendar date at midnight.
type Schedule struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID    int       `gorm:"not null;index" json:"doctor_id"`
	Day         time.Time `gorm:"type:date;not null;index" json:"day"`
	StartTime   string    `gorm:"type:time;not null" json:"start_time"`
	EndTime     string    `gorm:"type:time;not null" json:"end_time"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}
