package converter

import (
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
)

func HistoriqueToResponse(historique *entity.Historique) *dto.HistoriqueResponse {
	if historique == nil {
		return nil
	}

	return &dto.HistoriqueResponse{
		ID:          historique.ID,
		Title:       historique.Title,
		Description: historique.Description,
		Photo:       historique.Photo,
		CreatedAt:   historique.CreatedAt,
	}
}

func HistoriquesToResponses(historiques []entity.Historique) []dto.HistoriqueResponse {
	responses := make([]dto.HistoriqueResponse, len(historiques))
	for i := range historiques {
		responses[i] = *HistoriqueToResponse(&historiques[i])
	}
	return responses
}
