package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/squad-service/internal/cache"
	"github.com/spec-kit/squad-service/internal/domain"
	"github.com/spec-kit/squad-service/internal/events"
	"github.com/spec-kit/squad-service/internal/repository"
	apperrors "github.com/spec-kit/squad-service/pkg/util"
)

// MemberService manages squad members and their roster views.
type MemberService struct {
	members    repository.MemberRepository
	squads     repository.SquadRepository
	clubs      repository.ClubRepository
	roles      repository.RoleRepository
	dispatcher events.Dispatcher
	roster     *cache.RosterCache
}

// MemberDependencies bundles repository requirements for the member service.
type MemberDependencies struct {
	MemberRepo repository.MemberRepository
	SquadRepo  repository.SquadRepository
	ClubRepo   repository.ClubRepository
	RoleRepo   repository.RoleRepository
	Dispatcher events.Dispatcher
	Roster     *cache.RosterCache
}

// NewMemberService builds the service.
func NewMemberService(deps MemberDependencies) *MemberService {
	return &MemberService{
		members:    deps.MemberRepo,
		squads:     deps.SquadRepo,
		clubs:      deps.ClubRepo,
		roles:      deps.RoleRepo,
		dispatcher: deps.Dispatcher,
		roster:     deps.Roster,
	}
}

func (s *MemberService) validate(ctx context.Context, member *domain.Member) error {
	if strings.TrimSpace(member.FirstName) == "" || strings.TrimSpace(member.LastName) == "" {
		return apperrors.NewValidationError("first and last name required", nil)
	}
	if _, err := s.squads.GetByID(ctx, member.SquadID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("squad", nil)
		}
		return apperrors.MapError(err)
	}
	if _, err := s.clubs.GetByID(ctx, member.ClubID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("club", nil)
		}
		return apperrors.MapError(err)
	}
	if _, err := s.roles.GetByID(ctx, member.RoleID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("role", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// Create adds a member to a roster.
func (s *MemberService) Create(ctx context.Context, member *domain.Member, actorID int64) (*domain.MemberDetail, error) {
	if err := s.validate(ctx, member); err != nil {
		return nil, err
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.roster.InvalidateMember(ctx, []int64{member.SquadID}, []int64{member.ClubID})
	s.publish(ctx, events.EventMemberCreated, member, actorID)

	return s.Get(ctx, member.ID)
}

// Get returns a member with resolved squad, club and role.
func (s *MemberService) Get(ctx context.Context, id int64) (*domain.MemberDetail, error) {
	detail, err := s.members.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("member", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return detail, nil
}

// List returns all members with resolved relations.
func (s *MemberService) List(ctx context.Context) ([]domain.MemberDetail, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return members, nil
}

// Update replaces a member's fields, including roster reassignment.
func (s *MemberService) Update(ctx context.Context, member *domain.Member, actorID int64) (*domain.MemberDetail, error) {
	if err := s.validate(ctx, member); err != nil {
		return nil, err
	}

	// The previous squad/club rosters also go stale on reassignment.
	previous, err := s.Get(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	if err := s.members.Update(ctx, member); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("member", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.roster.InvalidateMember(ctx,
		[]int64{previous.SquadID, member.SquadID},
		[]int64{previous.ClubID, member.ClubID},
	)
	s.publish(ctx, events.EventMemberUpdated, member, actorID)

	return s.Get(ctx, member.ID)
}

// Delete removes a member from the roster.
func (s *MemberService) Delete(ctx context.Context, id int64, actorID int64) error {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.members.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("member", nil)
		}
		return apperrors.MapError(err)
	}

	s.roster.InvalidateMember(ctx, []int64{detail.SquadID}, []int64{detail.ClubID})
	s.publish(ctx, events.EventMemberDeleted, &detail.Member, actorID)
	return nil
}

// SquadRoster returns a squad and its members, served from cache when warm.
func (s *MemberService) SquadRoster(ctx context.Context, squadID int64) (*domain.Squad, []domain.MemberDetail, error) {
	squad, err := s.squads.GetByID(ctx, squadID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewNotFound("squad", nil)
		}
		return nil, nil, apperrors.MapError(err)
	}

	if members, ok := s.roster.GetSquadRoster(ctx, squadID); ok {
		return squad, members, nil
	}

	members, err := s.members.ListBySquad(ctx, squadID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	s.roster.SetSquadRoster(ctx, squadID, members)
	return squad, members, nil
}

// ClubRoster returns a club and its members, served from cache when warm.
func (s *MemberService) ClubRoster(ctx context.Context, clubID int64) (*domain.Club, []domain.MemberDetail, error) {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewNotFound("club", nil)
		}
		return nil, nil, apperrors.MapError(err)
	}

	if members, ok := s.roster.GetClubRoster(ctx, clubID); ok {
		return club, members, nil
	}

	members, err := s.members.ListByClub(ctx, clubID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	s.roster.SetClubRoster(ctx, clubID, members)
	return club, members, nil
}

func (s *MemberService) publish(ctx context.Context, eventType events.EventType, member *domain.Member, actorID int64) {
	publishEvent(ctx, s.dispatcher, eventType, member.ID, actorID, events.MemberChangedPayload{
		SquadID:     member.SquadID,
		ClubID:      member.ClubID,
		RoleID:      member.RoleID,
		LastName:    member.LastName,
		ShirtNumber: member.ShirtNumber,
	})
}
