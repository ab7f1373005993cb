package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/squad-service/internal/domain"
	"github.com/spec-kit/squad-service/internal/events"
	"github.com/spec-kit/squad-service/internal/repository"
	apperrors "github.com/spec-kit/squad-service/pkg/util"
)

// RoleService manages member roles.
type RoleService struct {
	roles      repository.RoleRepository
	dispatcher events.Dispatcher
}

// NewRoleService builds the service.
func NewRoleService(roles repository.RoleRepository, dispatcher events.Dispatcher) *RoleService {
	return &RoleService{roles: roles, dispatcher: dispatcher}
}

// Create registers a new role.
func (s *RoleService) Create(ctx context.Context, title string, actorID int64) (*domain.Role, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	role := &domain.Role{Title: title}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventRoleCreated, role, actorID)
	return role, nil
}

// Get returns a role by id.
func (s *RoleService) Get(ctx context.Context, id int64) (*domain.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("role", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return role, nil
}

// List returns all roles.
func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return roles, nil
}

// Update replaces a role's title.
func (s *RoleService) Update(ctx context.Context, id int64, title string, actorID int64) (*domain.Role, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	role := &domain.Role{ID: id, Title: title}
	if err := s.roles.Update(ctx, role); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("role", nil)
		}
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventRoleUpdated, role, actorID)
	return role, nil
}

// Delete removes a role and returns the deleted record.
func (s *RoleService) Delete(ctx context.Context, id int64, actorID int64) (*domain.Role, error) {
	role, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.roles.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("role", nil)
		}
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventRoleDeleted, role, actorID)
	return role, nil
}

func (s *RoleService) publish(ctx context.Context, eventType events.EventType, role *domain.Role, actorID int64) {
	publishEvent(ctx, s.dispatcher, eventType, role.ID, actorID, events.RoleChangedPayload{
		Title: role.Title,
	})
}
