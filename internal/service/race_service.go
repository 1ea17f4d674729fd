package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/persistence"
	"github.com/spec-kit/formula-api/internal/repository"
)

// RaceService manages races and their results.
type RaceService struct {
	races    repository.RaceRepository
	circuits repository.CircuitRepository
	results  repository.ResultRepository
	cache    persistence.ListCache
	logger   *zap.Logger
}

// NewRaceService constructs the service.
func NewRaceService(deps ResourceDependencies) *RaceService {
	return &RaceService{
		races:    deps.RaceRepo,
		circuits: deps.CircuitRepo,
		results:  deps.ResultRepo,
		cache:    deps.cache(),
		logger:   deps.logger(),
	}
}

// List returns every race ordered by date.
func (s *RaceService) List(ctx context.Context) ([]domain.Race, error) {
	races, err := cachedList(ctx, s.cache, s.logger, cacheKeyRaces, s.races.List)
	return races, translateWriteError(err, "race")
}

// Get fetches a race with its circuit.
func (s *RaceService) Get(ctx context.Context, id int64) (*domain.Race, error) {
	race, err := s.races.GetByID(ctx, id)
	if err != nil {
		return nil, translateWriteError(err, "race")
	}
	return race, nil
}

// Create schedules a race on an existing circuit.
func (s *RaceService) Create(ctx context.Context, race *domain.Race) (*domain.Race, error) {
	if err := ensureExists(ctx, s.circuits.Exists, race.Circuit.ID, "circuit"); err != nil {
		return nil, err
	}
	if err := s.races.Create(ctx, race); err != nil {
		return nil, translateWriteError(err, "race")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyRaces)
	return s.Get(ctx, race.ID)
}

// Update replaces a race's date, laps and circuit.
func (s *RaceService) Update(ctx context.Context, race *domain.Race) (*domain.Race, error) {
	if err := ensureExists(ctx, s.circuits.Exists, race.Circuit.ID, "circuit"); err != nil {
		return nil, err
	}
	if err := s.races.Update(ctx, race); err != nil {
		return nil, translateWriteError(err, "race")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyRaces)
	return s.Get(ctx, race.ID)
}

// Delete removes a race without results.
func (s *RaceService) Delete(ctx context.Context, id int64) error {
	if err := s.races.Delete(ctx, id); err != nil {
		return translateDeleteError(err, "race")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyRaces)
	return nil
}

// ListResults returns the classification of a race.
func (s *RaceService) ListResults(ctx context.Context, raceID int64) ([]domain.Result, error) {
	if err := ensureExists(ctx, s.races.Exists, raceID, "race"); err != nil {
		return nil, err
	}
	results, err := s.results.ListByRace(ctx, raceID)
	return results, translateWriteError(err, "result")
}
