package entity

// Doctor represents a practitioner registered by the clinic
type Doctor struct {
	ID             int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	Specialization string `gorm:"type:varchar(255);not null;index" json:"specialization"`
	Phone          string `gorm:"type:varchar(255);not null" json:"phone"`
	Email          string `gorm:"type:varchar(255);not null" json:"email"`
	Photo          string `gorm:"type:varchar(255)" json:"photo,omitempty"`

	// Relationships
	Schedules    []Schedule    `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
	Services     []Service     `gorm:"foreignKey:DoctorID" json:"services,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
