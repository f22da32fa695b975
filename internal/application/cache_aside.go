package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"user-directory/internal/cache"
	"user-directory/internal/domain/entity"
	"user-directory/internal/domain/repository"
)

// ErrPersistenceFailure signals that a durable write did not succeed.
// The underlying store error is wrapped alongside it.
var ErrPersistenceFailure = errors.New("persistence failure")

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "userdir_cache_hits_total",
		Help: "User lookups served from the cache",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "userdir_cache_misses_total",
		Help: "User lookups that fell through to the durable store",
	})
	cacheWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "userdir_cache_write_failures_total",
		Help: "Best-effort cache writes that failed and were swallowed",
	})
)

const userCacheKeyPrefix = "user:details:"

func userCacheKey(id string) string {
	return userCacheKeyPrefix + id
}

// CacheAside implements the read-through and write-through protocols for
// user records in one place, so every caller gets identical consistency
// guarantees. It is the only component that writes to the cache.
type CacheAside struct {
	repo   repository.UserRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCacheAside wires the accessor with an explicit TTL; there is no
// package-level default.
func NewCacheAside(repo repository.UserRepository, c cache.Cache, ttl time.Duration, logger *logrus.Logger) *CacheAside {
	return &CacheAside{repo: repo, cache: c, ttl: ttl, logger: logger}
}

// Resolve returns the projection for id, serving from the cache when
// possible. On a miss the durable record is loaded and the cache populated
// at the configured TTL. repository.ErrNotFound propagates unchanged and is
// never cached.
func (a *CacheAside) Resolve(ctx context.Context, id string) (*UserProjection, error) {
	key := userCacheKey(id)

	var cached UserProjection
	hit, err := a.cache.Get(ctx, key, &cached)
	if err != nil {
		// A broken cache degrades to store-only latency; it never fails a read.
		a.logger.WithError(err).WithField("key", key).Warn("cache read failed")
	}
	if hit {
		cacheHits.Inc()
		return &cached, nil
	}
	cacheMisses.Inc()

	u, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	proj := ProjectionOf(u)

	if err := a.cache.SetWithTTL(ctx, key, proj, a.ttl); err != nil {
		cacheWriteFailures.Inc()
		a.logger.WithError(err).WithField("key", key).Warn("cache populate failed")
	}
	return proj, nil
}

// PersistAndRefresh saves the user durably and then overwrites the cached
// projection. The store write always happens before the cache write: a
// failed save returns ErrPersistenceFailure without touching the cache, and
// a failed cache write after a committed save is logged and swallowed.
func (a *CacheAside) PersistAndRefresh(ctx context.Context, u *entity.User) (*UserProjection, error) {
	if err := a.repo.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	proj := ProjectionOf(u)
	key := userCacheKey(u.ID)
	if err := a.cache.SetWithTTL(ctx, key, proj, a.ttl); err != nil {
		cacheWriteFailures.Inc()
		a.logger.WithError(err).WithField("key", key).Warn("cache refresh failed after save")
	}
	return proj, nil
}
