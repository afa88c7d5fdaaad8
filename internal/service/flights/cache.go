package flights

import (
	"context"

	"go.uber.org/zap"
)

// ListCache caches whole entity lists. A nil ListCache disables caching.
type ListCache interface {
	GetList(ctx context.Context, entity string, dst any) (bool, error)
	SetList(ctx context.Context, entity string, list any) error
	Invalidate(ctx context.Context, entities ...string) error
}

// cachedList serves entity from the cache, falling back to load and
// refilling the cache. Cache failures are logged and never returned.
func cachedList[T any](ctx context.Context, c ListCache, log *zap.Logger, entity string, load func(context.Context) ([]T, error)) ([]T, error) {
	if c != nil {
		var cached []T
		hit, err := c.GetList(ctx, entity, &cached)
		if err != nil {
			log.Warn("list cache read failed", zap.String("entity", entity), zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	list, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if c != nil {
		if err := c.SetList(ctx, entity, list); err != nil {
			log.Warn("list cache write failed", zap.String("entity", entity), zap.Error(err))
		}
	}
	return list, nil
}

func invalidate(ctx context.Context, c ListCache, log *zap.Logger, entities ...string) {
	if c == nil {
		return
	}
	if err := c.Invalidate(ctx, entities...); err != nil {
		log.Warn("list cache invalidation failed", zap.Strings("entities", entities), zap.Error(err))
	}
}
