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

// SquadService manages national squads.
type SquadService struct {
	squads     repository.SquadRepository
	dispatcher events.Dispatcher
}

// NewSquadService builds the service.
func NewSquadService(squads repository.SquadRepository, dispatcher events.Dispatcher) *SquadService {
	return &SquadService{squads: squads, dispatcher: dispatcher}
}

// Create registers a new squad.
func (s *SquadService) Create(ctx context.Context, country string, actorID int64) (*domain.Squad, error) {
	if strings.TrimSpace(country) == "" {
		return nil, apperrors.NewValidationError("country required", nil)
	}
	squad := &domain.Squad{Country: country}
	if err := s.squads.Create(ctx, squad); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventSquadCreated, squad, actorID)
	return squad, nil
}

// Get returns a squad by id.
func (s *SquadService) Get(ctx context.Context, id int64) (*domain.Squad, error) {
	squad, err := s.squads.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("squad", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return squad, nil
}

// List returns all squads.
func (s *SquadService) List(ctx context.Context) ([]domain.Squad, error) {
	squads, err := s.squads.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return squads, nil
}

// Update replaces a squad's country.
func (s *SquadService) Update(ctx context.Context, id int64, country string, actorID int64) (*domain.Squad, error) {
	if strings.TrimSpace(country) == "" {
		return nil, apperrors.NewValidationError("country required", nil)
	}
	squad := &domain.Squad{ID: id, Country: country}
	if err := s.squads.Update(ctx, squad); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("squad", nil)
		}
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventSquadUpdated, squad, actorID)
	return squad, nil
}

// Delete removes a squad and returns the deleted record.
func (s *SquadService) Delete(ctx context.Context, id int64, actorID int64) (*domain.Squad, error) {
	squad, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.squads.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("squad", nil)
		}
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventSquadDeleted, squad, actorID)
	return squad, nil
}

func (s *SquadService) publish(ctx context.Context, eventType events.EventType, squad *domain.Squad, actorID int64) {
	publishEvent(ctx, s.dispatcher, eventType, squad.ID, actorID, events.SquadChangedPayload{
		Country: squad.Country,
	})
}
