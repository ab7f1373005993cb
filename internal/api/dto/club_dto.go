package dto

import "github.com/spec-kit/squad-service/internal/domain"

// ClubRequest payload for club mutations.
type ClubRequest struct {
	Name string `json:"name"`
}

// ClubResponse representation of a club.
type ClubResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewClubResponse maps a domain club.
func NewClubResponse(club *domain.Club) ClubResponse {
	return ClubResponse{ID: club.ID, Name: club.Name}
}

// NewClubResponses maps a list of domain clubs.
func NewClubResponses(clubs []domain.Club) []ClubResponse {
	result := make([]ClubResponse, 0, len(clubs))
	for i := range clubs {
		result = append(result, NewClubResponse(&clubs[i]))
	}
	return result
}
