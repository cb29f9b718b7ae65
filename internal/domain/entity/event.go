package entity

import "time"

// Event represents a clinic announcement or happening
type Event struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	Photo       string    `gorm:"type:varchar(255)" json:"photo,omitempty"`
}

func (Event) TableName() string {
	return "events"
}
