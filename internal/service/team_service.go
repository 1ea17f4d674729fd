package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/persistence"
	"github.com/spec-kit/formula-api/internal/repository"
)

// TeamService manages teams, their drivers and their cars.
type TeamService struct {
	teams   repository.TeamRepository
	drivers repository.DriverRepository
	cars    repository.CarRepository
	cache   persistence.ListCache
	logger  *zap.Logger
}

// NewTeamService constructs the service.
func NewTeamService(deps ResourceDependencies) *TeamService {
	return &TeamService{
		teams:   deps.TeamRepo,
		drivers: deps.DriverRepo,
		cars:    deps.CarRepo,
		cache:   deps.cache(),
		logger:  deps.logger(),
	}
}

// List returns all teams.
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	teams, err := cachedList(ctx, s.cache, s.logger, cacheKeyTeams, s.teams.List)
	return teams, translateWriteError(err, "team")
}

// Get fetches a team.
func (s *TeamService) Get(ctx context.Context, id int64) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return nil, translateWriteError(err, "team")
	}
	return team, nil
}

// Create enters a new team.
func (s *TeamService) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, translateWriteError(err, "team")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyTeams)
	return team, nil
}

// Update changes team metadata. Car lists embed the team name and are dropped too.
func (s *TeamService) Update(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if err := s.teams.Update(ctx, team); err != nil {
		return nil, translateWriteError(err, "team")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyTeams, cacheKeyCars)
	return team, nil
}

// Delete removes a team no driver or car references.
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	if err := s.teams.Delete(ctx, id); err != nil {
		return translateDeleteError(err, "team")
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyTeams)
	return nil
}

// ListDrivers returns the drivers racing for a team.
func (s *TeamService) ListDrivers(ctx context.Context, teamID int64) ([]domain.Driver, error) {
	if err := ensureExists(ctx, s.teams.Exists, teamID, "team"); err != nil {
		return nil, err
	}
	drivers, err := s.drivers.ListByTeam(ctx, teamID)
	return drivers, translateWriteError(err, "driver")
}

// ListCars returns the cars fielded by a team.
func (s *TeamService) ListCars(ctx context.Context, teamID int64) ([]domain.Car, error) {
	if err := ensureExists(ctx, s.teams.Exists, teamID, "team"); err != nil {
		return nil, err
	}
	cars, err := s.cars.ListByTeam(ctx, teamID)
	return cars, translateWriteError(err, "car")
}
