package dto

import "github.com/spec-kit/squad-service/internal/domain"

// RoleRequest payload for role mutations.
type RoleRequest struct {
	Title string `json:"title"`
}

// RoleResponse representation of a role.
type RoleResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// NewRoleResponse maps a domain role.
func NewRoleResponse(role *domain.Role) RoleResponse {
	return RoleResponse{ID: role.ID, Title: role.Title}
}

// NewRoleResponses maps a list of domain roles.
func NewRoleResponses(roles []domain.Role) []RoleResponse {
	result := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		result = append(result, NewRoleResponse(&roles[i]))
	}
	return result
}
