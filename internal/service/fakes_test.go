package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/persistence"
	"github.com/spec-kit/formula-api/internal/repository"
)

type fakeDriverRepo struct {
	mu      sync.Mutex
	nextID  int64
	drivers map[int64]domain.Driver
	writes  int
	err     error
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{drivers: map[int64]domain.Driver{}}
}

func (r *fakeDriverRepo) Create(_ context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.drivers {
		if existing.Email == driver.Email {
			return &repository.ConstraintError{Kind: repository.ErrUniqueViolation, Constraint: repository.DriverEmailConstraint}
		}
	}
	r.writes++
	r.nextID++
	driver.ID = r.nextID
	r.drivers[driver.ID] = *driver
	return nil
}

func (r *fakeDriverRepo) Update(_ context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.drivers[driver.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	r.writes++
	existing.FirstName = driver.FirstName
	existing.LastName = driver.LastName
	existing.Status = driver.Status
	existing.TeamID = driver.TeamID
	r.drivers[driver.ID] = existing
	return nil
}

func (r *fakeDriverRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.drivers[id]
	if !ok {
		return pgx.ErrNoRows
	}
	r.writes++
	existing.PasswordHash = hash
	r.drivers[id] = existing
	return nil
}

func (r *fakeDriverRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.drivers, id)
	return nil
}

func (r *fakeDriverRepo) GetByID(_ context.Context, id int64) (*domain.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	driver, ok := r.drivers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &driver, nil
}

func (r *fakeDriverRepo) GetByEmail(_ context.Context, email string) (*domain.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, driver := range r.drivers {
		if driver.Email == email {
			d := driver
			return &d, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeDriverRepo) List(context.Context) ([]domain.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Driver, 0, len(r.drivers))
	for _, driver := range r.drivers {
		out = append(out, driver)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDriverRepo) ListByTeam(ctx context.Context, teamID int64) ([]domain.Driver, error) {
	all, _ := r.List(ctx)
	out := []domain.Driver{}
	for _, driver := range all {
		if driver.TeamID != nil && *driver.TeamID == teamID {
			out = append(out, driver)
		}
	}
	return out, nil
}

func (r *fakeDriverRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.drivers[id]
	return ok, nil
}

type fakeCircuitRepo struct {
	circuits  map[int64]domain.Circuit
	listCalls int
	deleteErr error
}

func newFakeCircuitRepo(circuits ...domain.Circuit) *fakeCircuitRepo {
	r := &fakeCircuitRepo{circuits: map[int64]domain.Circuit{}}
	for _, c := range circuits {
		r.circuits[c.ID] = c
	}
	return r
}

func (r *fakeCircuitRepo) Create(_ context.Context, circuit *domain.Circuit) error {
	for _, existing := range r.circuits {
		if existing.Name == circuit.Name {
			return &repository.ConstraintError{Kind: repository.ErrUniqueViolation, Constraint: repository.CircuitNameConstraint}
		}
	}
	circuit.ID = int64(len(r.circuits) + 1)
	r.circuits[circuit.ID] = *circuit
	return nil
}

func (r *fakeCircuitRepo) Update(_ context.Context, circuit *domain.Circuit) error {
	if _, ok := r.circuits[circuit.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.circuits[circuit.ID] = *circuit
	return nil
}

func (r *fakeCircuitRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.circuits[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.circuits, id)
	return nil
}

func (r *fakeCircuitRepo) GetByID(_ context.Context, id int64) (*domain.Circuit, error) {
	circuit, ok := r.circuits[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &circuit, nil
}

func (r *fakeCircuitRepo) List(context.Context) ([]domain.Circuit, error) {
	r.listCalls++
	out := make([]domain.Circuit, 0, len(r.circuits))
	for _, c := range r.circuits {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCircuitRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.circuits[id]
	return ok, nil
}

type fakeRaceRepo struct {
	races map[int64]domain.Race
}

func newFakeRaceRepo() *fakeRaceRepo {
	return &fakeRaceRepo{races: map[int64]domain.Race{}}
}

func (r *fakeRaceRepo) Create(_ context.Context, race *domain.Race) error {
	race.ID = int64(len(r.races) + 1)
	r.races[race.ID] = *race
	return nil
}

func (r *fakeRaceRepo) Update(_ context.Context, race *domain.Race) error {
	if _, ok := r.races[race.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.races[race.ID] = *race
	return nil
}

func (r *fakeRaceRepo) Delete(_ context.Context, id int64) error {
	delete(r.races, id)
	return nil
}

func (r *fakeRaceRepo) GetByID(_ context.Context, id int64) (*domain.Race, error) {
	race, ok := r.races[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &race, nil
}

func (r *fakeRaceRepo) List(context.Context) ([]domain.Race, error) {
	out := []domain.Race{}
	for _, race := range r.races {
		out = append(out, race)
	}
	return out, nil
}

func (r *fakeRaceRepo) ListByCircuit(_ context.Context, circuitID int64) ([]domain.Race, error) {
	out := []domain.Race{}
	for _, race := range r.races {
		if race.Circuit.ID == circuitID {
			out = append(out, race)
		}
	}
	return out, nil
}

func (r *fakeRaceRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.races[id]
	return ok, nil
}

// memoryCache is a ListCache over a map; failing makes every call error.
type memoryCache struct {
	entries map[string][]byte
	failing bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

var errCacheDown = errors.New("cache down")

func (c *memoryCache) Load(_ context.Context, key string, dest any) error {
	if c.failing {
		return errCacheDown
	}
	raw, ok := c.entries[key]
	if !ok {
		return persistence.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache) Store(_ context.Context, key string, value any) error {
	if c.failing {
		return errCacheDown
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, keys ...string) error {
	if c.failing {
		return errCacheDown
	}
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}
