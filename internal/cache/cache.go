package cache

import (
	"context"
	"time"
)

// Cache is the shared distributed cache contract. Entries are derived data:
// rebuildable at any time from the durable store, never the authority.
//
// Get reports a miss for both never-set and expired keys. SetWithTTL is
// best-effort; callers must treat its failure as non-fatal.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	SetWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error
}
