package dto

import "github.com/spec-kit/squad-service/internal/domain"

// MemberRequest payload for member mutations.
type MemberRequest struct {
	FirstName   string `json:"first_name"`
	Nickname    string `json:"nickname"`
	LastName    string `json:"last_name"`
	Age         int    `json:"age"`
	ShirtNumber int    `json:"shirt_number"`
	SquadID     int64  `json:"squad_id"`
	ClubID      int64  `json:"club_id"`
	RoleID      int64  `json:"role_id"`
}

// ToDomain converts the request into a domain member.
func (r MemberRequest) ToDomain(id int64) *domain.Member {
	return &domain.Member{
		ID:          id,
		FirstName:   r.FirstName,
		Nickname:    r.Nickname,
		LastName:    r.LastName,
		Age:         r.Age,
		ShirtNumber: r.ShirtNumber,
		SquadID:     r.SquadID,
		ClubID:      r.ClubID,
		RoleID:      r.RoleID,
	}
}

// MemberResponse embeds the resolved squad, club and role.
type MemberResponse struct {
	ID          int64         `json:"id"`
	FirstName   string        `json:"first_name"`
	Nickname    string        `json:"nickname"`
	LastName    string        `json:"last_name"`
	Age         int           `json:"age"`
	ShirtNumber int           `json:"shirt_number"`
	Squad       SquadResponse `json:"squad"`
	Club        ClubResponse  `json:"club"`
	Role        RoleResponse  `json:"role"`
}

// NewMemberResponse maps a member detail.
func NewMemberResponse(detail *domain.MemberDetail) MemberResponse {
	return MemberResponse{
		ID:          detail.ID,
		FirstName:   detail.FirstName,
		Nickname:    detail.Nickname,
		LastName:    detail.LastName,
		Age:         detail.Age,
		ShirtNumber: detail.ShirtNumber,
		Squad:       NewSquadResponse(&detail.Squad),
		Club:        NewClubResponse(&detail.Club),
		Role:        NewRoleResponse(&detail.Role),
	}
}

// NewMemberResponses maps a list of member details.
func NewMemberResponses(details []domain.MemberDetail) []MemberResponse {
	result := make([]MemberResponse, 0, len(details))
	for i := range details {
		result = append(result, NewMemberResponse(&details[i]))
	}
	return result
}

// SquadRosterResponse is a squad together with its members.
type SquadRosterResponse struct {
	Squad   SquadResponse    `json:"squad"`
	Members []MemberResponse `json:"members"`
}

// ClubRosterResponse is a club together with its members.
type ClubRosterResponse struct {
	Club    ClubResponse     `json:"club"`
	Members []MemberResponse `json:"members"`
}
