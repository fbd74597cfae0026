package pricing

import (
	"context"
	"fmt"

	"github.com/rustyeddy/fxcalc/market"
	"go.uber.org/zap"
)

// CachedSource fronts a primary Source with a Cache and an optional fallback.
type CachedSource struct {
	primary  Source
	fallback Source
	cache    *Cache
	log      *zap.Logger
}

// NewCachedSource wires the pieces together. fallback may be nil; a nil
// logger is replaced with a no-op logger.
func NewCachedSource(primary, fallback Source, cache *Cache, log *zap.Logger) *CachedSource {
	if cache == nil {
		cache = NewCache(DefaultCacheTTL)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedSource{primary: primary, fallback: fallback, cache: cache, log: log}
}

func (s *CachedSource) Price(ctx context.Context, pair market.Pair) (Quote, error) {
	if q, ok := s.cache.Get(pair); ok {
		return q, nil
	}

	q, err := s.primary.Price(ctx, pair)
	if err != nil {
		if s.fallback == nil {
			return Quote{}, err
		}
		s.log.Warn("price fetch failed, using fallback",
			zap.Stringer("pair", pair),
			zap.Error(err))

		var ferr error
		q, ferr = s.fallback.Price(ctx, pair)
		if ferr != nil {
			return Quote{}, fmt.Errorf("primary: %v; fallback: %w", err, ferr)
		}
		// Fallback prices are not cached so the next call retries the live source.
		return q, nil
	}

	s.cache.Set(q)
	s.log.Debug("price fetched",
		zap.Stringer("pair", pair),
		zap.Float64("price", q.Price),
		zap.String("source", q.Source))
	return q, nil
}
