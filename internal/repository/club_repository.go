package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/squad-service/internal/domain"
)

// ClubRepository manages persistence for clubs.
type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	Update(ctx context.Context, club *domain.Club) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)
}

type clubRepository struct {
	pool *pgxpool.Pool
}

// NewClubRepository constructs repository.
func NewClubRepository(pool *pgxpool.Pool) ClubRepository {
	return &clubRepository{pool: pool}
}

func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	const query = `INSERT INTO clubs (name) VALUES ($1) RETURNING id`
	return r.pool.QueryRow(ctx, query, club.Name).Scan(&club.ID)
}

func (r *clubRepository) Update(ctx context.Context, club *domain.Club) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE clubs SET name=$1 WHERE id=$2`, club.Name, club.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clubRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM clubs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clubRepository) GetByID(ctx context.Context, id int64) (*domain.Club, error) {
	var club domain.Club
	if err := r.pool.QueryRow(ctx, `SELECT id, name FROM clubs WHERE id=$1`, id).Scan(
		&club.ID,
		&club.Name,
	); err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) List(ctx context.Context) ([]domain.Club, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM clubs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Club
	for rows.Next() {
		var club domain.Club
		if err := rows.Scan(&club.ID, &club.Name); err != nil {
			return nil, err
		}
		result = append(result, club)
	}
	return result, rows.Err()
}
