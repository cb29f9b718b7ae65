package entity

// Patient represents a person receiving care
type Patient struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Age   int    `gorm:"not null" json:"age"`
	Email string `gorm:"type:varchar(255);not null" json:"email"`
	Phone string `gorm:"type:varchar(255);not null" json:"phone"`
	Photo string `gorm:"type:varchar(255)" json:"photo,omitempty"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
