// Package rangecache caches date-range query results under
// (kind, startDate, endDate) keys with a fixed TTL.
//
// Two backends exist: an in-process map (default, and the one tests inject)
// and Redis for deployments where several instances must share invalidation.
package rangecache

import (
	"context"
	"fmt"
	"time"
)

// Cache is the availability-cache port.
// Implementations must treat Get on an expired entry as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
	InvalidateAll(ctx context.Context)
}

// dateLayout formats the date parts of a cache key
const dateLayout = "2006-01-02"

// Key builds the cache key for a kind and inclusive date range
func Key(kind string, start, end time.Time) string {
	return fmt.Sprintf("%s:%s:%s", kind, start.Format(dateLayout), end.Format(dateLayout))
}
