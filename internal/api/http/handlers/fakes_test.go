package handlers_test

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/squad-service/internal/domain"
)

// In-memory repositories backing the endpoint tests.

type fakeStore struct {
	mu      sync.Mutex
	seq     int64
	users   map[int64]domain.User
	squads  map[int64]domain.Squad
	clubs   map[int64]domain.Club
	roles   map[int64]domain.Role
	members map[int64]domain.Member
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[int64]domain.User),
		squads:  make(map[int64]domain.Squad),
		clubs:   make(map[int64]domain.Club),
		roles:   make(map[int64]domain.Role),
		members: make(map[int64]domain.Member),
	}
}

func (s *fakeStore) nextID() int64 {
	s.seq++
	return s.seq
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user.ID = r.store.nextID()
	user.CreatedAt = time.Now()
	r.store.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user, ok := r.store.users[id]; ok {
		return &user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		result = append(result, user)
	}
	return result, nil
}

type fakeSquadRepo struct{ store *fakeStore }

func (r *fakeSquadRepo) Create(_ context.Context, squad *domain.Squad) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	squad.ID = r.store.nextID()
	r.store.squads[squad.ID] = *squad
	return nil
}

func (r *fakeSquadRepo) Update(_ context.Context, squad *domain.Squad) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.squads[squad.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.store.squads[squad.ID] = *squad
	return nil
}

func (r *fakeSquadRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.squads[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.squads, id)
	return nil
}

func (r *fakeSquadRepo) GetByID(_ context.Context, id int64) (*domain.Squad, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if squad, ok := r.store.squads[id]; ok {
		return &squad, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeSquadRepo) List(context.Context) ([]domain.Squad, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]domain.Squad, 0, len(r.store.squads))
	for _, squad := range r.store.squads {
		result = append(result, squad)
	}
	return result, nil
}

type fakeClubRepo struct{ store *fakeStore }

func (r *fakeClubRepo) Create(_ context.Context, club *domain.Club) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	club.ID = r.store.nextID()
	r.store.clubs[club.ID] = *club
	return nil
}

func (r *fakeClubRepo) Update(_ context.Context, club *domain.Club) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.clubs[club.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.store.clubs[club.ID] = *club
	return nil
}

func (r *fakeClubRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.clubs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.clubs, id)
	return nil
}

func (r *fakeClubRepo) GetByID(_ context.Context, id int64) (*domain.Club, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if club, ok := r.store.clubs[id]; ok {
		return &club, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeClubRepo) List(context.Context) ([]domain.Club, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]domain.Club, 0, len(r.store.clubs))
	for _, club := range r.store.clubs {
		result = append(result, club)
	}
	return result, nil
}

type fakeRoleRepo struct{ store *fakeStore }

func (r *fakeRoleRepo) Create(_ context.Context, role *domain.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	role.ID = r.store.nextID()
	r.store.roles[role.ID] = *role
	return nil
}

func (r *fakeRoleRepo) Update(_ context.Context, role *domain.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.roles[role.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.store.roles[role.ID] = *role
	return nil
}

func (r *fakeRoleRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.roles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.roles, id)
	return nil
}

func (r *fakeRoleRepo) GetByID(_ context.Context, id int64) (*domain.Role, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if role, ok := r.store.roles[id]; ok {
		return &role, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeRoleRepo) List(context.Context) ([]domain.Role, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]domain.Role, 0, len(r.store.roles))
	for _, role := range r.store.roles {
		result = append(result, role)
	}
	return result, nil
}

type fakeMemberRepo struct{ store *fakeStore }

func (r *fakeMemberRepo) Create(_ context.Context, member *domain.Member) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	member.ID = r.store.nextID()
	r.store.members[member.ID] = *member
	return nil
}

func (r *fakeMemberRepo) Update(_ context.Context, member *domain.Member) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.members[member.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.store.members[member.ID] = *member
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.members[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.members, id)
	return nil
}

func (r *fakeMemberRepo) detailLocked(member domain.Member) (domain.MemberDetail, error) {
	squad, ok := r.store.squads[member.SquadID]
	if !ok {
		return domain.MemberDetail{}, pgx.ErrNoRows
	}
	club, ok := r.store.clubs[member.ClubID]
	if !ok {
		return domain.MemberDetail{}, pgx.ErrNoRows
	}
	role, ok := r.store.roles[member.RoleID]
	if !ok {
		return domain.MemberDetail{}, pgx.ErrNoRows
	}
	return domain.MemberDetail{Member: member, Squad: squad, Club: club, Role: role}, nil
}

func (r *fakeMemberRepo) GetByID(_ context.Context, id int64) (*domain.MemberDetail, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	member, ok := r.store.members[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	detail, err := r.detailLocked(member)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *fakeMemberRepo) List(context.Context) ([]domain.MemberDetail, error) {
	return r.listWhere(func(domain.Member) bool { return true })
}

func (r *fakeMemberRepo) ListBySquad(_ context.Context, squadID int64) ([]domain.MemberDetail, error) {
	return r.listWhere(func(m domain.Member) bool { return m.SquadID == squadID })
}

func (r *fakeMemberRepo) ListByClub(_ context.Context, clubID int64) ([]domain.MemberDetail, error) {
	return r.listWhere(func(m domain.Member) bool { return m.ClubID == clubID })
}

func (r *fakeMemberRepo) listWhere(match func(domain.Member) bool) ([]domain.MemberDetail, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []domain.MemberDetail
	for _, member := range r.store.members {
		if !match(member) {
			continue
		}
		detail, err := r.detailLocked(member)
		if err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, nil
}
