package repository

import (
	"context"

	"github.com/spec-kit/formula-api/internal/domain"
)

// CarRepository manages persistence for cars.
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	ListByTeam(ctx context.Context, teamID int64) ([]domain.Car, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type carRepository struct {
	db DBTX
}

// NewCarRepository constructs repository.
func NewCarRepository(db DBTX) CarRepository {
	return &carRepository{db: db}
}

const carSelect = `
        SELECT c.id, c.model, c.weight, c.year, t.id, t.name
        FROM cars c JOIN teams t ON t.id = c.team_id`

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	const query = `
        INSERT INTO cars (model, weight, year, team_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	err := r.db.QueryRow(ctx, query, car.Model, car.Weight, car.Year, car.Team.ID).Scan(&car.ID)
	return translateError(err)
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	const query = `UPDATE cars SET model=$1, weight=$2, year=$3, team_id=$4 WHERE id=$5`
	return execAffectingOne(ctx, r.db, query, car.Model, car.Weight, car.Year, car.Team.ID, car.ID)
}

func (r *carRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM cars WHERE id=$1`, id)
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	return scanCar(r.db.QueryRow(ctx, carSelect+` WHERE c.id=$1`, id))
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	return r.list(ctx, carSelect+` ORDER BY c.id`)
}

func (r *carRepository) ListByTeam(ctx context.Context, teamID int64) ([]domain.Car, error) {
	return r.list(ctx, carSelect+` WHERE c.team_id=$1 ORDER BY c.id`, teamID)
}

func (r *carRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM cars WHERE id=$1)`, id)
}

func (r *carRepository) list(ctx context.Context, query string, args ...any) ([]domain.Car, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *car)
	}
	return result, rows.Err()
}

func scanCar(row rowScanner) (*domain.Car, error) {
	var car domain.Car
	if err := row.Scan(&car.ID, &car.Model, &car.Weight, &car.Year, &car.Team.ID, &car.Team.Name); err != nil {
		return nil, err
	}
	return &car, nil
}
