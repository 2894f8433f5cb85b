package ports

import "time"

// ResponseCache is the in-process TTL store used to avoid redundant upstream
// calls. Values are opaque; callers recover their type with apicache.Read[T].
//
// Freshness is decided per call: an entry older than the ttl passed to Read is
// removed and reported as absent. Implementations must be safe for concurrent use.
type ResponseCache interface {
	// Read returns the stored value when its age does not exceed ttl.
	Read(key string, ttl time.Duration) (any, bool)
	// Write stores value under key, replacing any prior entry and its timestamp.
	Write(key string, value any)
	// Invalidate removes key; absence is not an error.
	Invalidate(key string)
	// InvalidateByPrefix removes every key starting with prefix (literal, case-sensitive).
	InvalidateByPrefix(prefix string)
}
