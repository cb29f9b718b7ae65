package entity

// Service represents a medical service offered by a doctor
type Service struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	DoctorID    int    `gorm:"not null;index" json:"doctor_id"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
