package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/squad-service/internal/domain"
)

// MemberRepository manages persistence for squad members. Reads resolve the
// related squad, club and role in a single query.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.MemberDetail, error)
	List(ctx context.Context) ([]domain.MemberDetail, error)
	ListBySquad(ctx context.Context, squadID int64) ([]domain.MemberDetail, error)
	ListByClub(ctx context.Context, clubID int64) ([]domain.MemberDetail, error)
}

type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository constructs repository.
func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

const memberDetailQuery = `
        SELECT m.id, m.first_name, m.nickname, m.last_name, m.age, m.shirt_number,
               m.squad_id, m.club_id, m.role_id,
               s.id, s.country,
               c.id, c.name,
               r.id, r.title
        FROM members m
        JOIN squads s ON s.id = m.squad_id
        JOIN clubs c ON c.id = m.club_id
        JOIN roles r ON r.id = m.role_id`

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	const query = `
        INSERT INTO members (first_name, nickname, last_name, age, shirt_number, squad_id, club_id, role_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		member.FirstName,
		member.Nickname,
		member.LastName,
		member.Age,
		member.ShirtNumber,
		member.SquadID,
		member.ClubID,
		member.RoleID,
	).Scan(&member.ID)
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	const query = `
        UPDATE members SET first_name=$1, nickname=$2, last_name=$3, age=$4,
               shirt_number=$5, squad_id=$6, club_id=$7, role_id=$8
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		member.FirstName,
		member.Nickname,
		member.LastName,
		member.Age,
		member.ShirtNumber,
		member.SquadID,
		member.ClubID,
		member.RoleID,
		member.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.MemberDetail, error) {
	row := r.pool.QueryRow(ctx, memberDetailQuery+` WHERE m.id=$1`, id)

	var detail domain.MemberDetail
	if err := scanMemberDetail(row, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *memberRepository) List(ctx context.Context) ([]domain.MemberDetail, error) {
	return r.queryDetails(ctx, memberDetailQuery+` ORDER BY m.id`)
}

func (r *memberRepository) ListBySquad(ctx context.Context, squadID int64) ([]domain.MemberDetail, error) {
	return r.queryDetails(ctx, memberDetailQuery+` WHERE m.squad_id=$1 ORDER BY m.id`, squadID)
}

func (r *memberRepository) ListByClub(ctx context.Context, clubID int64) ([]domain.MemberDetail, error) {
	return r.queryDetails(ctx, memberDetailQuery+` WHERE m.club_id=$1 ORDER BY m.id`, clubID)
}

func (r *memberRepository) queryDetails(ctx context.Context, query string, args ...any) ([]domain.MemberDetail, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MemberDetail
	for rows.Next() {
		var detail domain.MemberDetail
		if err := scanMemberDetail(rows, &detail); err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, rows.Err()
}

func scanMemberDetail(row pgx.Row, detail *domain.MemberDetail) error {
	return row.Scan(
		&detail.ID,
		&detail.FirstName,
		&detail.Nickname,
		&detail.LastName,
		&detail.Age,
		&detail.ShirtNumber,
		&detail.SquadID,
		&detail.ClubID,
		&detail.RoleID,
		&detail.Squad.ID,
		&detail.Squad.Country,
		&detail.Club.ID,
		&detail.Club.Name,
		&detail.Role.ID,
		&detail.Role.Title,
	)
}
