package service_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/squad-service/internal/cache"
	"github.com/spec-kit/squad-service/internal/domain"
	"github.com/spec-kit/squad-service/internal/events"
	"github.com/spec-kit/squad-service/internal/service"
	apperrors "github.com/spec-kit/squad-service/pkg/util"
)

type captureDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *captureDispatcher) captured() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}

type memberFixture struct {
	svc        *service.MemberService
	squads     *memSquadRepo
	clubs      *memClubRepo
	roles      *memRoleRepo
	dispatcher *captureDispatcher

	squad domain.Squad
	club  domain.Club
	role  domain.Role
}

func newMemberFixture(t *testing.T) *memberFixture {
	t.Helper()

	f := &memberFixture{
		squads:     newMemSquadRepo(),
		clubs:      newMemClubRepo(),
		roles:      newMemRoleRepo(),
		dispatcher: &captureDispatcher{},
	}
	members := newMemMemberRepo(f.squads, f.clubs, f.roles)
	f.svc = service.NewMemberService(service.MemberDependencies{
		MemberRepo: members,
		SquadRepo:  f.squads,
		ClubRepo:   f.clubs,
		RoleRepo:   f.roles,
		Dispatcher: f.dispatcher,
		Roster:     cache.NewRosterCache(nil, zap.NewNop()),
	})

	ctx := context.Background()
	f.squad = domain.Squad{Country: "Argentina"}
	require.NoError(t, f.squads.Create(ctx, &f.squad))
	f.club = domain.Club{Name: "Inter Miami"}
	require.NoError(t, f.clubs.Create(ctx, &f.club))
	f.role = domain.Role{Title: "Forward"}
	require.NoError(t, f.roles.Create(ctx, &f.role))
	return f
}

func (f *memberFixture) newMember() *domain.Member {
	return &domain.Member{
		FirstName:   "Lionel",
		Nickname:    "Leo",
		LastName:    "Messi",
		Age:         38,
		ShirtNumber: 10,
		SquadID:     f.squad.ID,
		ClubID:      f.club.ID,
		RoleID:      f.role.ID,
	}
}

func TestMemberCreateResolvesRelations(t *testing.T) {
	t.Parallel()

	f := newMemberFixture(t)
	detail, err := f.svc.Create(context.Background(), f.newMember(), 1)
	require.NoError(t, err)

	assert.NotZero(t, detail.ID)
	assert.Equal(t, "Argentina", detail.Squad.Country)
	assert.Equal(t, "Inter Miami", detail.Club.Name)
	assert.Equal(t, "Forward", detail.Role.Title)
}

func TestMemberCreateRejectsMissingRelations(t *testing.T) {
	t.Parallel()

	f := newMemberFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.Member)
	}{
		{"unknown squad", func(m *domain.Member) { m.SquadID = 99 }},
		{"unknown club", func(m *domain.Member) { m.ClubID = 99 }},
		{"unknown role", func(m *domain.Member) { m.RoleID = 99 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			member := f.newMember()
			tc.mutate(member)
			_, err := f.svc.Create(ctx, member, 1)
			require.Error(t, err)
			assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
		})
	}

	assert.Empty(t, f.dispatcher.captured())
}

func TestMemberCreateRejectsBlankNames(t *testing.T) {
	t.Parallel()

	f := newMemberFixture(t)
	member := f.newMember()
	member.LastName = "  "

	_, err := f.svc.Create(context.Background(), member, 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
}

func TestMemberLifecyclePublishesEvents(t *testing.T) {
	t.Parallel()

	f := newMemberFixture(t)
	ctx := context.Background()

	detail, err := f.svc.Create(ctx, f.newMember(), 5)
	require.NoError(t, err)

	updated := detail.Member
	updated.ShirtNumber = 30
	_, err = f.svc.Update(ctx, &updated, 5)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, detail.ID, 5))

	captured := f.dispatcher.captured()
	require.Len(t, captured, 3)
	assert.Equal(t, events.EventMemberCreated, captured[0].Type)
	assert.Equal(t, events.EventMemberUpdated, captured[1].Type)
	assert.Equal(t, events.EventMemberDeleted, captured[2].Type)
	for _, event := range captured {
		assert.NotEmpty(t, event.ID)
		assert.Equal(t, detail.ID, event.EntityID)
		assert.Equal(t, int64(5), event.ActorID)
	}

	_, err = f.svc.Get(ctx, detail.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestRosterViews(t *testing.T) {
	t.Parallel()

	f := newMemberFixture(t)
	ctx := context.Background()

	otherClub := domain.Club{Name: "Barcelona"}
	require.NoError(t, f.clubs.Create(ctx, &otherClub))

	first, err := f.svc.Create(ctx, f.newMember(), 1)
	require.NoError(t, err)

	second := f.newMember()
	second.FirstName = "Emiliano"
	second.LastName = "Martinez"
	second.ShirtNumber = 23
	second.ClubID = otherClub.ID
	_, err = f.svc.Create(ctx, second, 1)
	require.NoError(t, err)

	squad, members, err := f.svc.SquadRoster(ctx, f.squad.ID)
	require.NoError(t, err)
	assert.Equal(t, "Argentina", squad.Country)
	assert.Len(t, members, 2)

	club, members, err := f.svc.ClubRoster(ctx, f.club.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inter Miami", club.Name)
	require.Len(t, members, 1)
	assert.Equal(t, first.ID, members[0].ID)

	_, _, err = f.svc.SquadRoster(ctx, 99)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)

	_, _, err = f.svc.ClubRoster(ctx, 99)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}
