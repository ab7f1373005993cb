package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/squad-service/internal/domain"
)

// In-memory repository fakes backing the service tests.

type memUserRepo struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: make(map[int64]domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = r.seq
	user.CreatedAt = time.Now()
	r.rows[user.ID] = *user
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[user.ID] = *user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.rows[id]; ok {
		return &user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.rows {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) List(context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.User, 0, len(r.rows))
	for _, user := range r.rows {
		result = append(result, user)
	}
	return result, nil
}

type memSquadRepo struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]domain.Squad
}

func newMemSquadRepo() *memSquadRepo {
	return &memSquadRepo{rows: make(map[int64]domain.Squad)}
}

func (r *memSquadRepo) Create(_ context.Context, squad *domain.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	squad.ID = r.seq
	r.rows[squad.ID] = *squad
	return nil
}

func (r *memSquadRepo) Update(_ context.Context, squad *domain.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[squad.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[squad.ID] = *squad
	return nil
}

func (r *memSquadRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

func (r *memSquadRepo) GetByID(_ context.Context, id int64) (*domain.Squad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if squad, ok := r.rows[id]; ok {
		return &squad, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memSquadRepo) List(context.Context) ([]domain.Squad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Squad, 0, len(r.rows))
	for _, squad := range r.rows {
		result = append(result, squad)
	}
	return result, nil
}

type memClubRepo struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]domain.Club
}

func newMemClubRepo() *memClubRepo {
	return &memClubRepo{rows: make(map[int64]domain.Club)}
}

func (r *memClubRepo) Create(_ context.Context, club *domain.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	club.ID = r.seq
	r.rows[club.ID] = *club
	return nil
}

func (r *memClubRepo) Update(_ context.Context, club *domain.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[club.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[club.ID] = *club
	return nil
}

func (r *memClubRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

func (r *memClubRepo) GetByID(_ context.Context, id int64) (*domain.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if club, ok := r.rows[id]; ok {
		return &club, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memClubRepo) List(context.Context) ([]domain.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Club, 0, len(r.rows))
	for _, club := range r.rows {
		result = append(result, club)
	}
	return result, nil
}

type memRoleRepo struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]domain.Role
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{rows: make(map[int64]domain.Role)}
}

func (r *memRoleRepo) Create(_ context.Context, role *domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	role.ID = r.seq
	r.rows[role.ID] = *role
	return nil
}

func (r *memRoleRepo) Update(_ context.Context, role *domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[role.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[role.ID] = *role
	return nil
}

func (r *memRoleRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

func (r *memRoleRepo) GetByID(_ context.Context, id int64) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role, ok := r.rows[id]; ok {
		return &role, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memRoleRepo) List(context.Context) ([]domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Role, 0, len(r.rows))
	for _, role := range r.rows {
		result = append(result, role)
	}
	return result, nil
}

type memMemberRepo struct {
	mu     sync.Mutex
	seq    int64
	rows   map[int64]domain.Member
	squads *memSquadRepo
	clubs  *memClubRepo
	roles  *memRoleRepo
}

func newMemMemberRepo(squads *memSquadRepo, clubs *memClubRepo, roles *memRoleRepo) *memMemberRepo {
	return &memMemberRepo{
		rows:   make(map[int64]domain.Member),
		squads: squads,
		clubs:  clubs,
		roles:  roles,
	}
}

func (r *memMemberRepo) Create(_ context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	member.ID = r.seq
	r.rows[member.ID] = *member
	return nil
}

func (r *memMemberRepo) Update(_ context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[member.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[member.ID] = *member
	return nil
}

func (r *memMemberRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

func (r *memMemberRepo) detail(ctx context.Context, member domain.Member) (domain.MemberDetail, error) {
	squad, err := r.squads.GetByID(ctx, member.SquadID)
	if err != nil {
		return domain.MemberDetail{}, err
	}
	club, err := r.clubs.GetByID(ctx, member.ClubID)
	if err != nil {
		return domain.MemberDetail{}, err
	}
	role, err := r.roles.GetByID(ctx, member.RoleID)
	if err != nil {
		return domain.MemberDetail{}, err
	}
	return domain.MemberDetail{Member: member, Squad: *squad, Club: *club, Role: *role}, nil
}

func (r *memMemberRepo) GetByID(ctx context.Context, id int64) (*domain.MemberDetail, error) {
	r.mu.Lock()
	member, ok := r.rows[id]
	r.mu.Unlock()
	if !ok {
		return nil, pgx.ErrNoRows
	}
	detail, err := r.detail(ctx, member)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *memMemberRepo) List(ctx context.Context) ([]domain.MemberDetail, error) {
	return r.listWhere(ctx, func(domain.Member) bool { return true })
}

func (r *memMemberRepo) ListBySquad(ctx context.Context, squadID int64) ([]domain.MemberDetail, error) {
	return r.listWhere(ctx, func(m domain.Member) bool { return m.SquadID == squadID })
}

func (r *memMemberRepo) ListByClub(ctx context.Context, clubID int64) ([]domain.MemberDetail, error) {
	return r.listWhere(ctx, func(m domain.Member) bool { return m.ClubID == clubID })
}

func (r *memMemberRepo) listWhere(ctx context.Context, match func(domain.Member) bool) ([]domain.MemberDetail, error) {
	r.mu.Lock()
	members := make([]domain.Member, 0, len(r.rows))
	for _, member := range r.rows {
		if match(member) {
			members = append(members, member)
		}
	}
	r.mu.Unlock()

	var result []domain.MemberDetail
	for _, member := range members {
		detail, err := r.detail(ctx, member)
		if err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, nil
}
