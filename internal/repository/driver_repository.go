package repository

import (
	"context"
	"fmt"

	"github.com/spec-kit/formula-api/internal/domain"
)

// Unique index on drivers.email.
const DriverEmailConstraint = "idx_driver_email_unique"

// DriverRepository defines persistence access for drivers and their credentials.
type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	Update(ctx context.Context, driver *domain.Driver) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	GetByEmail(ctx context.Context, email string) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	ListByTeam(ctx context.Context, teamID int64) ([]domain.Driver, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type driverRepository struct {
	db DBTX
}

// NewDriverRepository returns a Postgres-backed implementation.
func NewDriverRepository(db DBTX) DriverRepository {
	return &driverRepository{db: db}
}

const driverColumns = `id, first_name, last_name, status, team_id, email, password_hash, roles`

func (r *driverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	const query = `
        INSERT INTO drivers (first_name, last_name, status, team_id, email, password_hash, roles)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`

	roles, err := domain.MarshalRoles(driver.Roles)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, query,
		driver.FirstName,
		driver.LastName,
		driver.Status,
		driver.TeamID,
		driver.Email,
		driver.PasswordHash,
		roles,
	).Scan(&driver.ID)
	return translateError(err)
}

func (r *driverRepository) Update(ctx context.Context, driver *domain.Driver) error {
	const query = `
        UPDATE drivers SET first_name=$1, last_name=$2, status=$3, team_id=$4
        WHERE id=$5`

	return execAffectingOne(ctx, r.db, query,
		driver.FirstName,
		driver.LastName,
		driver.Status,
		driver.TeamID,
		driver.ID,
	)
}

func (r *driverRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE drivers SET password_hash=$1 WHERE id=$2`
	return execAffectingOne(ctx, r.db, query, passwordHash, id)
}

func (r *driverRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM drivers WHERE id=$1`, id)
}

func (r *driverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id=$1`
	return scanDriver(r.db.QueryRow(ctx, query, id))
}

// GetByEmail matches the email exactly, case included.
func (r *driverRepository) GetByEmail(ctx context.Context, email string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE email=$1`
	return scanDriver(r.db.QueryRow(ctx, query, email))
}

func (r *driverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	return r.list(ctx, `SELECT `+driverColumns+` FROM drivers ORDER BY id`)
}

func (r *driverRepository) ListByTeam(ctx context.Context, teamID int64) ([]domain.Driver, error) {
	return r.list(ctx, `SELECT `+driverColumns+` FROM drivers WHERE team_id=$1 ORDER BY id`, teamID)
}

func (r *driverRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM drivers WHERE id=$1)`, id)
}

func (r *driverRepository) list(ctx context.Context, query string, args ...any) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Driver{}
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *driver)
	}
	return result, rows.Err()
}

func scanDriver(row rowScanner) (*domain.Driver, error) {
	var driver domain.Driver
	var roles string
	if err := row.Scan(
		&driver.ID,
		&driver.FirstName,
		&driver.LastName,
		&driver.Status,
		&driver.TeamID,
		&driver.Email,
		&driver.PasswordHash,
		&roles,
	); err != nil {
		return nil, err
	}

	set, err := domain.UnmarshalRoles(roles)
	if err != nil {
		return nil, fmt.Errorf("driver %d: %w", driver.ID, err)
	}
	driver.Roles = set
	return &driver, nil
}
