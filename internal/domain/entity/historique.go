package entity

import "time"

// Historique is a historical record entry, listed newest first
type Historique struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Photo       string    `gorm:"type:varchar(255)" json:"photo,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Historique) TableName() string {
	return "historiques"
}
