package repository

import (
	"context"

	"github.com/spec-kit/formula-api/internal/domain"
)

// RaceRepository manages persistence for races.
type RaceRepository interface {
	Create(ctx context.Context, race *domain.Race) error
	Update(ctx context.Context, race *domain.Race) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Race, error)
	List(ctx context.Context) ([]domain.Race, error)
	ListByCircuit(ctx context.Context, circuitID int64) ([]domain.Race, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type raceRepository struct {
	db DBTX
}

// NewRaceRepository constructs repository.
func NewRaceRepository(db DBTX) RaceRepository {
	return &raceRepository{db: db}
}

const raceSelect = `
        SELECT r.id, r.date, r.laps, c.id, c.name
        FROM races r JOIN circuits c ON c.id = r.circuit_id`

func (r *raceRepository) Create(ctx context.Context, race *domain.Race) error {
	const query = `
        INSERT INTO races (date, laps, circuit_id)
        VALUES ($1,$2,$3)
        RETURNING id`
	err := r.db.QueryRow(ctx, query, race.Date, race.Laps, race.Circuit.ID).Scan(&race.ID)
	return translateError(err)
}

func (r *raceRepository) Update(ctx context.Context, race *domain.Race) error {
	const query = `UPDATE races SET date=$1, laps=$2, circuit_id=$3 WHERE id=$4`
	return execAffectingOne(ctx, r.db, query, race.Date, race.Laps, race.Circuit.ID, race.ID)
}

func (r *raceRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM races WHERE id=$1`, id)
}

func (r *raceRepository) GetByID(ctx context.Context, id int64) (*domain.Race, error) {
	return scanRace(r.db.QueryRow(ctx, raceSelect+` WHERE r.id=$1`, id))
}

func (r *raceRepository) List(ctx context.Context) ([]domain.Race, error) {
	return r.list(ctx, raceSelect+` ORDER BY r.date`)
}

func (r *raceRepository) ListByCircuit(ctx context.Context, circuitID int64) ([]domain.Race, error) {
	return r.list(ctx, raceSelect+` WHERE r.circuit_id=$1 ORDER BY r.date`, circuitID)
}

func (r *raceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM races WHERE id=$1)`, id)
}

func (r *raceRepository) list(ctx context.Context, query string, args ...any) ([]domain.Race, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Race{}
	for rows.Next() {
		race, err := scanRace(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *race)
	}
	return result, rows.Err()
}

func scanRace(row rowScanner) (*domain.Race, error) {
	var race domain.Race
	if err := row.Scan(&race.ID, &race.Date, &race.Laps, &race.Circuit.ID, &race.Circuit.Name); err != nil {
		return nil, err
	}
	return &race, nil
}
