package dto

import "time"

// Request DTOs

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Location    string `json:"location" validate:"required"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	Date        *string `json:"date" validate:"omitempty"`
	Location    *string `json:"location" validate:"omitempty"`
}

// Response DTOs

type EventResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Photo       string    `json:"photo,omitempty"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}
