package repository

import (
	"context"

	"github.com/spec-kit/formula-api/internal/domain"
)

// ResultRepository manages persistence for race results.
type ResultRepository interface {
	Create(ctx context.Context, result *domain.Result) error
	Update(ctx context.Context, result *domain.Result) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Result, error)
	List(ctx context.Context) ([]domain.Result, error)
	ListByRace(ctx context.Context, raceID int64) ([]domain.Result, error)
	ListByDriver(ctx context.Context, driverID int64) ([]domain.Result, error)
	ListByCar(ctx context.Context, carID int64) ([]domain.Result, error)
}

type resultRepository struct {
	db DBTX
}

// NewResultRepository constructs repository.
func NewResultRepository(db DBTX) ResultRepository {
	return &resultRepository{db: db}
}

const resultSelect = `
        SELECT id, position, points, status, race_id, driver_id, car_id
        FROM results`

func (r *resultRepository) Create(ctx context.Context, result *domain.Result) error {
	const query = `
        INSERT INTO results (position, points, status, race_id, driver_id, car_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		result.Position,
		result.Points,
		result.Status,
		result.RaceID,
		result.DriverID,
		result.CarID,
	).Scan(&result.ID)
	return translateError(err)
}

func (r *resultRepository) Update(ctx context.Context, result *domain.Result) error {
	const query = `
        UPDATE results SET position=$1, points=$2, status=$3, race_id=$4, driver_id=$5, car_id=$6
        WHERE id=$7`
	return execAffectingOne(ctx, r.db, query,
		result.Position,
		result.Points,
		result.Status,
		result.RaceID,
		result.DriverID,
		result.CarID,
		result.ID,
	)
}

func (r *resultRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM results WHERE id=$1`, id)
}

func (r *resultRepository) GetByID(ctx context.Context, id int64) (*domain.Result, error) {
	return scanResult(r.db.QueryRow(ctx, resultSelect+` WHERE id=$1`, id))
}

func (r *resultRepository) List(ctx context.Context) ([]domain.Result, error) {
	return r.list(ctx, resultSelect+` ORDER BY race_id, position`)
}

func (r *resultRepository) ListByRace(ctx context.Context, raceID int64) ([]domain.Result, error) {
	return r.list(ctx, resultSelect+` WHERE race_id=$1 ORDER BY position`, raceID)
}

func (r *resultRepository) ListByDriver(ctx context.Context, driverID int64) ([]domain.Result, error) {
	return r.list(ctx, resultSelect+` WHERE driver_id=$1 ORDER BY race_id`, driverID)
}

func (r *resultRepository) ListByCar(ctx context.Context, carID int64) ([]domain.Result, error) {
	return r.list(ctx, resultSelect+` WHERE car_id=$1 ORDER BY race_id`, carID)
}

func (r *resultRepository) list(ctx context.Context, query string, args ...any) ([]domain.Result, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Result{}
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

func scanResult(row rowScanner) (*domain.Result, error) {
	var result domain.Result
	if err := row.Scan(
		&result.ID,
		&result.Position,
		&result.Points,
		&result.Status,
		&result.RaceID,
		&result.DriverID,
		&result.CarID,
	); err != nil {
		return nil, err
	}
	return &result, nil
}
