package repository

import (
	"context"

	"github.com/spec-kit/formula-api/internal/domain"
)

// Unique index on circuits.name.
const CircuitNameConstraint = "idx_circuit_name_unique"

// CircuitRepository manages persistence for circuits.
type CircuitRepository interface {
	Create(ctx context.Context, circuit *domain.Circuit) error
	Update(ctx context.Context, circuit *domain.Circuit) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Circuit, error)
	List(ctx context.Context) ([]domain.Circuit, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type circuitRepository struct {
	db DBTX
}

// NewCircuitRepository constructs repository.
func NewCircuitRepository(db DBTX) CircuitRepository {
	return &circuitRepository{db: db}
}

func (r *circuitRepository) Create(ctx context.Context, circuit *domain.Circuit) error {
	const query = `
        INSERT INTO circuits (name, city, country, active)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		circuit.Name,
		circuit.City,
		circuit.Country,
		circuit.Active,
	).Scan(&circuit.ID)
	return translateError(err)
}

func (r *circuitRepository) Update(ctx context.Context, circuit *domain.Circuit) error {
	const query = `
        UPDATE circuits SET name=$1, city=$2, country=$3, active=$4
        WHERE id=$5`
	return execAffectingOne(ctx, r.db, query,
		circuit.Name,
		circuit.City,
		circuit.Country,
		circuit.Active,
		circuit.ID,
	)
}

func (r *circuitRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM circuits WHERE id=$1`, id)
}

func (r *circuitRepository) GetByID(ctx context.Context, id int64) (*domain.Circuit, error) {
	const query = `
        SELECT id, name, city, country, active
        FROM circuits WHERE id=$1`
	var circuit domain.Circuit
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&circuit.ID,
		&circuit.Name,
		&circuit.City,
		&circuit.Country,
		&circuit.Active,
	); err != nil {
		return nil, err
	}
	return &circuit, nil
}

func (r *circuitRepository) List(ctx context.Context) ([]domain.Circuit, error) {
	const query = `
        SELECT id, name, city, country, active
        FROM circuits ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Circuit{}
	for rows.Next() {
		var circuit domain.Circuit
		if err := rows.Scan(&circuit.ID, &circuit.Name, &circuit.City, &circuit.Country, &circuit.Active); err != nil {
			return nil, err
		}
		result = append(result, circuit)
	}
	return result, rows.Err()
}

func (r *circuitRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM circuits WHERE id=$1)`, id)
}
