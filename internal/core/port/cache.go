package port

import "time"

// CachePort is a process-local TTL memoization store. Entries are
// replaced whole; there is no invalidation beyond expiry, so callers
// pick TTLs matching their staleness tolerance.
type CachePort interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
}

// Clock abstracts wall time so cache expiry is testable without sleeps.
type Clock interface {
	Now() time.Time
}
