package service

import (
	"go.uber.org/zap"

	"github.com/spec-kit/formula-api/internal/persistence"
	"github.com/spec-kit/formula-api/internal/repository"
)

// ResourceDependencies bundles what the resource services need.
type ResourceDependencies struct {
	CircuitRepo repository.CircuitRepository
	RaceRepo    repository.RaceRepository
	ResultRepo  repository.ResultRepository
	DriverRepo  repository.DriverRepository
	TeamRepo    repository.TeamRepository
	CarRepo     repository.CarRepository
	Cache       persistence.ListCache
	Logger      *zap.Logger
}

func (d ResourceDependencies) cache() persistence.ListCache {
	if d.Cache == nil {
		return persistence.NewListCache(nil, 0)
	}
	return d.Cache
}

func (d ResourceDependencies) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
