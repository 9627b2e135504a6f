package shared

import (
	"context"
	"time"
)

// ReportCache caches serialized report payloads. A miss is reported through
// the boolean, not an error; errors are reserved for backend failures.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}
