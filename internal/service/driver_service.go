package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/repository"
)

// DriverService manages driver profiles. Credentials are created through AuthService.
type DriverService struct {
	drivers repository.DriverRepository
	teams   repository.TeamRepository
	results repository.ResultRepository
	logger  *zap.Logger
}

// NewDriverService constructs the service.
func NewDriverService(deps ResourceDependencies) *DriverService {
	return &DriverService{
		drivers: deps.DriverRepo,
		teams:   deps.TeamRepo,
		results: deps.ResultRepo,
		logger:  deps.logger(),
	}
}

// List returns every driver.
func (s *DriverService) List(ctx context.Context) ([]domain.Driver, error) {
	drivers, err := s.drivers.List(ctx)
	return drivers, translateWriteError(err, "driver")
}

// Get fetches a driver.
func (s *DriverService) Get(ctx context.Context, id int64) (*domain.Driver, error) {
	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, translateWriteError(err, "driver")
	}
	return driver, nil
}

// UpdateProfile changes name, status and team. Email and roles are left untouched.
func (s *DriverService) UpdateProfile(ctx context.Context, id int64, profile domain.DriverProfile) (*domain.Driver, error) {
	if profile.TeamID != nil {
		if err := ensureExists(ctx, s.teams.Exists, *profile.TeamID, "team"); err != nil {
			return nil, err
		}
	}
	driver := &domain.Driver{
		ID:        id,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Status:    profile.Status,
		TeamID:    profile.TeamID,
	}
	if err := s.drivers.Update(ctx, driver); err != nil {
		return nil, translateWriteError(err, "driver")
	}
	return s.Get(ctx, id)
}

// Delete removes a driver without results.
func (s *DriverService) Delete(ctx context.Context, id int64) error {
	if err := s.drivers.Delete(ctx, id); err != nil {
		return translateDeleteError(err, "driver")
	}
	s.logger.Info("driver deleted", zap.Int64("driver_id", id))
	return nil
}

// ListResults returns a driver's results.
func (s *DriverService) ListResults(ctx context.Context, driverID int64) ([]domain.Result, error) {
	if err := ensureExists(ctx, s.drivers.Exists, driverID, "driver"); err != nil {
		return nil, err
	}
	results, err := s.results.ListByDriver(ctx, driverID)
	return results, translateWriteError(err, "result")
}
