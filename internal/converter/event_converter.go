package converter

import (
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
)

func EventToResponse(event *entity.Event) *dto.EventResponse {
	if event == nil {
		return nil
	}

	return &dto.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
		Photo:       event.Photo,
	}
}

func EventsToResponses(events []entity.Event) []dto.EventResponse {
	responses := make([]dto.EventResponse, len(events))
	for i := range events {
		responses[i] = *EventToResponse(&events[i])
	}
	return responses
}
