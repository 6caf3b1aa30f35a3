package cache

import (
	"context"
	"time"
)

// NoopCache is used when no cache backend is available: every read misses
// and every write is discarded, so catalog reads always hit the store.
type NoopCache struct{}

var _ SnapshotCache = NoopCache{}

func (NoopCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
