package service

import (
	"context"

	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/repository"
)

// ResultService manages race results.
type ResultService struct {
	results repository.ResultRepository
	races   repository.RaceRepository
	drivers repository.DriverRepository
	cars    repository.CarRepository
}

// NewResultService constructs the service.
func NewResultService(deps ResourceDependencies) *ResultService {
	return &ResultService{
		results: deps.ResultRepo,
		races:   deps.RaceRepo,
		drivers: deps.DriverRepo,
		cars:    deps.CarRepo,
	}
}

func (s *ResultService) List(ctx context.Context) ([]domain.Result, error) {
	results, err := s.results.List(ctx)
	return results, translateWriteError(err, "result")
}

func (s *ResultService) Get(ctx context.Context, id int64) (*domain.Result, error) {
	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		return nil, translateWriteError(err, "result")
	}
	return result, nil
}

func (s *ResultService) Create(ctx context.Context, result *domain.Result) (*domain.Result, error) {
	if err := s.checkReferences(ctx, result); err != nil {
		return nil, err
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, translateWriteError(err, "result")
	}
	return result, nil
}

func (s *ResultService) Update(ctx context.Context, result *domain.Result) (*domain.Result, error) {
	if err := s.checkReferences(ctx, result); err != nil {
		return nil, err
	}
	if err := s.results.Update(ctx, result); err != nil {
		return nil, translateWriteError(err, "result")
	}
	return result, nil
}

func (s *ResultService) Delete(ctx context.Context, id int64) error {
	return translateDeleteError(s.results.Delete(ctx, id), "result")
}

func (s *ResultService) checkReferences(ctx context.Context, result *domain.Result) error {
	if err := ensureExists(ctx, s.races.Exists, result.RaceID, "race"); err != nil {
		return err
	}
	if err := ensureExists(ctx, s.drivers.Exists, result.DriverID, "driver"); err != nil {
		return err
	}
	if result.CarID != nil {
		return ensureExists(ctx, s.cars.Exists, *result.CarID, "car")
	}
	return nil
}
