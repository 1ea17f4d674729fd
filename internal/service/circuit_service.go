package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/persistence"
	"github.com/spec-kit/formula-api/internal/repository"
)

// CircuitService manages circuits and their races.
type CircuitService struct {
	circuits repository.CircuitRepository
	races    repository.RaceRepository
	cache    persistence.ListCache
	logger   *zap.Logger
}

// NewCircuitService constructs the service.
func NewCircuitService(deps ResourceDependencies) *CircuitService {
	return &CircuitService{
		circuits: deps.CircuitRepo,
		races:    deps.RaceRepo,
		cache:    deps.cache(),
		logger:   deps.logger(),
	}
}

func (s *CircuitService) List(ctx context.Context) ([]domain.Circuit, error) {
	circuits, err := cachedList(ctx, s.cache, s.logger, cacheKeyCircuits, s.circuits.List)
	return circuits, translateWriteError(err, "circuit")
}

func (s *CircuitService) Get(ctx context.Context, id int64) (*domain.Circuit, error) {
	circuit, err := s.circuits.GetByID(ctx, id)
	if err != nil {
		return nil, translateWriteError(err, "circuit")
	}
	return circuit, nil
}

func (s *CircuitService) Create(ctx context.Context, circuit *domain.Circuit) (*domain.Circuit, error) {
	if err := s.circuits.Create(ctx, circuit); err != nil {
		return nil, translateWriteError(err, "circuit")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyCircuits)
	return circuit, nil
}

func (s *CircuitService) Update(ctx context.Context, circuit *domain.Circuit) (*domain.Circuit, error) {
	if err := s.circuits.Update(ctx, circuit); err != nil {
		return nil, translateWriteError(err, "circuit")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyCircuits, cacheKeyRaces)
	return circuit, nil
}

func (s *CircuitService) Delete(ctx context.Context, id int64) error {
	if err := s.circuits.Delete(ctx, id); err != nil {
		return translateDeleteError(err, "circuit")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyCircuits)
	return nil
}

// ListRaces returns the races held on a circuit.
func (s *CircuitService) ListRaces(ctx context.Context, circuitID int64) ([]domain.Race, error) {
	if err := ensureExists(ctx, s.circuits.Exists, circuitID, "circuit"); err != nil {
		return nil, err
	}
	races, err := s.races.ListByCircuit(ctx, circuitID)
	return races, translateWriteError(err, "race")
}
