package dto

import "github.com/spec-kit/squad-service/internal/domain"

// SquadRequest payload for squad mutations.
type SquadRequest struct {
	Country string `json:"country"`
}

// SquadResponse representation of a squad.
type SquadResponse struct {
	ID      int64  `json:"id"`
	Country string `json:"country"`
}

// NewSquadResponse maps a domain squad.
func NewSquadResponse(squad *domain.Squad) SquadResponse {
	return SquadResponse{ID: squad.ID, Country: squad.Country}
}

// NewSquadResponses maps a list of domain squads.
func NewSquadResponses(squads []domain.Squad) []SquadResponse {
	result := make([]SquadResponse, 0, len(squads))
	for i := range squads {
		result = append(result, NewSquadResponse(&squads[i]))
	}
	return result
}
