package http

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/repository"
)

type memoryDrivers struct {
	mu      sync.Mutex
	drivers []domain.Driver
}

func (r *memoryDrivers) Create(_ context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.drivers {
		if existing.Email == driver.Email {
			return &repository.ConstraintError{Kind: repository.ErrUniqueViolation, Constraint: repository.DriverEmailConstraint}
		}
	}
	driver.ID = int64(len(r.drivers) + 1)
	r.drivers = append(r.drivers, *driver)
	return nil
}

func (r *memoryDrivers) Update(_ context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.drivers {
		if r.drivers[i].ID == driver.ID {
			r.drivers[i].FirstName = driver.FirstName
			r.drivers[i].LastName = driver.LastName
			r.drivers[i].Status = driver.Status
			r.drivers[i].TeamID = driver.TeamID
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memoryDrivers) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.drivers {
		if r.drivers[i].ID == id {
			r.drivers[i].PasswordHash = hash
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memoryDrivers) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.drivers {
		if r.drivers[i].ID == id {
			r.drivers = append(r.drivers[:i], r.drivers[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memoryDrivers) GetByID(_ context.Context, id int64) (*domain.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, driver := range r.drivers {
		if driver.ID == id {
			d := driver
			return &d, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryDrivers) GetByEmail(_ context.Context, email string) (*domain.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, driver := range r.drivers {
		if driver.Email == email {
			d := driver
			return &d, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryDrivers) List(context.Context) ([]domain.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Driver{}, r.drivers...), nil
}

func (r *memoryDrivers) ListByTeam(context.Context, int64) ([]domain.Driver, error) {
	return []domain.Driver{}, nil
}

func (r *memoryDrivers) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

type memoryCircuits struct {
	circuits []domain.Circuit
}

func (r *memoryCircuits) Create(_ context.Context, circuit *domain.Circuit) error {
	circuit.ID = int64(len(r.circuits) + 1)
	r.circuits = append(r.circuits, *circuit)
	return nil
}

func (r *memoryCircuits) Update(context.Context, *domain.Circuit) error { return pgx.ErrNoRows }

func (r *memoryCircuits) Delete(context.Context, int64) error { return pgx.ErrNoRows }

func (r *memoryCircuits) GetByID(_ context.Context, id int64) (*domain.Circuit, error) {
	for _, circuit := range r.circuits {
		if circuit.ID == id {
			c := circuit
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryCircuits) List(context.Context) ([]domain.Circuit, error) {
	return append([]domain.Circuit{}, r.circuits...), nil
}

func (r *memoryCircuits) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

type memoryResults struct{}

func (memoryResults) Create(context.Context, *domain.Result) error {
	return nil
}

func (memoryResults) Update(context.Context, *domain.Result) error {
	return nil
}

func (memoryResults) Delete(context.Context, int64) error {
	return nil
}

func (memoryResults) GetByID(context.Context, int64) (*domain.Result, error) {
	return nil, pgx.ErrNoRows
}

func (memoryResults) List(context.Context) ([]domain.Result, error) {
	return []domain.Result{}, nil
}

func (memoryResults) ListByRace(context.Context, int64) ([]domain.Result, error) {
	return []domain.Result{}, nil
}

func (memoryResults) ListByDriver(context.Context, int64) ([]domain.Result, error) {
	return []domain.Result{}, nil
}

func (memoryResults) ListByCar(context.Context, int64) ([]domain.Result, error) {
	return []domain.Result{}, nil
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }
