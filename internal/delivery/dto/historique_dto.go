package dto

import "time"

// Request DTOs

type CreateHistoriqueRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateHistoriqueRequest struct {
	Title       *string `json:"title" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
}

// Response DTOs

type HistoriqueResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Photo       string    `json:"photo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoriqueListResponse struct {
	Historiques []HistoriqueResponse `json:"historiques"`
	Total       int                  `json:"total"`
}
