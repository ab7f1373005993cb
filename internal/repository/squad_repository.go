package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/squad-service/internal/domain"
)

// SquadRepository manages persistence for national squads.
type SquadRepository interface {
	Create(ctx context.Context, squad *domain.Squad) error
	Update(ctx context.Context, squad *domain.Squad) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Squad, error)
	List(ctx context.Context) ([]domain.Squad, error)
}

type squadRepository struct {
	pool *pgxpool.Pool
}

// NewSquadRepository constructs repository.
func NewSquadRepository(pool *pgxpool.Pool) SquadRepository {
	return &squadRepository{pool: pool}
}

func (r *squadRepository) Create(ctx context.Context, squad *domain.Squad) error {
	const query = `INSERT INTO squads (country) VALUES ($1) RETURNING id`
	return r.pool.QueryRow(ctx, query, squad.Country).Scan(&squad.ID)
}

func (r *squadRepository) Update(ctx context.Context, squad *domain.Squad) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE squads SET country=$1 WHERE id=$2`, squad.Country, squad.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *squadRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM squads WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *squadRepository) GetByID(ctx context.Context, id int64) (*domain.Squad, error) {
	var squad domain.Squad
	if err := r.pool.QueryRow(ctx, `SELECT id, country FROM squads WHERE id=$1`, id).Scan(
		&squad.ID,
		&squad.Country,
	); err != nil {
		return nil, err
	}
	return &squad, nil
}

func (r *squadRepository) List(ctx context.Context) ([]domain.Squad, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, country FROM squads ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Squad
	for rows.Next() {
		var squad domain.Squad
		if err := rows.Scan(&squad.ID, &squad.Country); err != nil {
			return nil, err
		}
		result = append(result, squad)
	}
	return result, rows.Err()
}
