package repository

import (
	"context"

	"github.com/spec-kit/formula-api/internal/domain"
)

// Unique index on teams.name.
const TeamNameConstraint = "idx_team_name_unique"

// TeamRepository manages persistence for teams.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type teamRepository struct {
	db DBTX
}

// NewTeamRepository constructs repository.
func NewTeamRepository(db DBTX) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	const query = `
        INSERT INTO teams (name, country, join_date)
        VALUES ($1,$2,$3)
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		team.Name,
		team.Country,
		team.JoinDate,
	).Scan(&team.ID)
	return translateError(err)
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	const query = `
        UPDATE teams SET name=$1, country=$2, join_date=$3
        WHERE id=$4`
	return execAffectingOne(ctx, r.db, query,
		team.Name,
		team.Country,
		team.JoinDate,
		team.ID,
	)
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM teams WHERE id=$1`, id)
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	const query = `
        SELECT id, name, country, join_date
        FROM teams WHERE id=$1`
	var team domain.Team
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Country,
		&team.JoinDate,
	); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]domain.Team, error) {
	const query = `
        SELECT id, name, country, join_date
        FROM teams ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Team{}
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Country, &team.JoinDate); err != nil {
			return nil, err
		}
		result = append(result, team)
	}
	return result, rows.Err()
}

func (r *teamRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM teams WHERE id=$1)`, id)
}
