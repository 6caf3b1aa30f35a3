package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// SnapshotCache stores opaque serialized snapshots keyed by catalog name.
// It is a best-effort read-through accelerator: callers treat every Get
// failure as a miss and never fail a read because a Set did not stick.
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
