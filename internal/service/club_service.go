package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/squad-service/internal/domain"
	"github.com/spec-kit/squad-service/internal/events"
	"github.com/spec-kit/squad-service/internal/repository"
	apperrors "github.com/spec-kit/squad-service/pkg/util"
)

// ClubService manages clubs.
type ClubService struct {
	clubs      repository.ClubRepository
	dispatcher events.Dispatcher
}

// NewClubService builds the service.
func NewClubService(clubs repository.ClubRepository, dispatcher events.Dispatcher) *ClubService {
	return &ClubService{clubs: clubs, dispatcher: dispatcher}
}

func validateClubName(name string) error {
	if len(name) < 2 {
		return apperrors.NewValidationError("club name must be at least 2 characters", nil)
	}
	return nil
}

// Create registers a new club.
func (s *ClubService) Create(ctx context.Context, name string, actorID int64) (*domain.Club, error) {
	if err := validateClubName(name); err != nil {
		return nil, err
	}
	club := &domain.Club{Name: name}
	if err := s.clubs.Create(ctx, club); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventClubCreated, club, actorID)
	return club, nil
}

// Get returns a club by id.
func (s *ClubService) Get(ctx context.Context, id int64) (*domain.Club, error) {
	club, err := s.clubs.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("club", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return club, nil
}

// List returns all clubs.
func (s *ClubService) List(ctx context.Context) ([]domain.Club, error) {
	clubs, err := s.clubs.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return clubs, nil
}

// Update replaces a club's name.
func (s *ClubService) Update(ctx context.Context, id int64, name string, actorID int64) (*domain.Club, error) {
	if err := validateClubName(name); err != nil {
		return nil, err
	}
	club := &domain.Club{ID: id, Name: name}
	if err := s.clubs.Update(ctx, club); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("club", nil)
		}
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventClubUpdated, club, actorID)
	return club, nil
}

// Delete removes a club and returns the deleted record.
func (s *ClubService) Delete(ctx context.Context, id int64, actorID int64) (*domain.Club, error) {
	club, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.clubs.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("club", nil)
		}
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventClubDeleted, club, actorID)
	return club, nil
}

func (s *ClubService) publish(ctx context.Context, eventType events.EventType, club *domain.Club, actorID int64) {
	publishEvent(ctx, s.dispatcher, eventType, club.ID, actorID, events.ClubChangedPayload{
		Name: club.Name,
	})
}
