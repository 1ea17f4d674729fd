package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/persistence"
	"github.com/spec-kit/formula-api/internal/repository"
)

// CarService manages cars.
type CarService struct {
	cars    repository.CarRepository
	teams   repository.TeamRepository
	results repository.ResultRepository
	cache   persistence.ListCache
	logger  *zap.Logger
}

// NewCarService constructs the service.
func NewCarService(deps ResourceDependencies) *CarService {
	return &CarService{
		cars:    deps.CarRepo,
		teams:   deps.TeamRepo,
		results: deps.ResultRepo,
		cache:   deps.cache(),
		logger:  deps.logger(),
	}
}

func (s *CarService) List(ctx context.Context) ([]domain.Car, error) {
	cars, err := cachedList(ctx, s.cache, s.logger, cacheKeyCars, s.cars.List)
	return cars, translateWriteError(err, "car")
}

func (s *CarService) Get(ctx context.Context, id int64) (*domain.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return nil, translateWriteError(err, "car")
	}
	return car, nil
}

func (s *CarService) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	if err := ensureExists(ctx, s.teams.Exists, car.Team.ID, "team"); err != nil {
		return nil, err
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, translateWriteError(err, "car")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyCars)
	return s.Get(ctx, car.ID)
}

func (s *CarService) Update(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	if err := ensureExists(ctx, s.teams.Exists, car.Team.ID, "team"); err != nil {
		return nil, err
	}
	if err := s.cars.Update(ctx, car); err != nil {
		return nil, translateWriteError(err, "car")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyCars)
	return s.Get(ctx, car.ID)
}

func (s *CarService) Delete(ctx context.Context, id int64) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		return translateDeleteError(err, "car")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyCars)
	return nil
}

// ListResults returns the results scored with a car.
func (s *CarService) ListResults(ctx context.Context, carID int64) ([]domain.Result, error) {
	if err := ensureExists(ctx, s.cars.Exists, carID, "car"); err != nil {
		return nil, err
	}
	results, err := s.results.ListByCar(ctx, carID)
	return results, translateWriteError(err, "result")
}
