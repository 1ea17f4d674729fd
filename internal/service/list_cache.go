package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/formula-api/internal/persistence"
)

// Cache keys for reference lists.
const (
	cacheKeyCircuits = "circuits"
	cacheKeyRaces    = "races"
	cacheKeyTeams    = "teams"
	cacheKeyCars     = "cars"
)

// cachedList serves a list from the cache and falls back to load on a miss or cache failure.
func cachedList[T any](ctx context.Context, cache persistence.ListCache, logger *zap.Logger, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var items []T
	err := cache.Load(ctx, key, &items)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, persistence.ErrCacheMiss) {
		logger.Warn("list cache read failed", zap.String("key", key), zap.Error(err))
	}

	items, err = load(ctx)
	if err != nil {
		return nil, err
	}
	if err := cache.Store(ctx, key, items); err != nil {
		logger.Warn("list cache write failed", zap.String("key", key), zap.Error(err))
	}
	return items, nil
}

func invalidate(ctx context.Context, cache persistence.ListCache, logger *zap.Logger, keys ...string) {
	if err := cache.Invalidate(ctx, keys...); err != nil {
		logger.Warn("list cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
