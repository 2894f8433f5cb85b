package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RateLimitRepository provides atomic fixed-window counters. Implementations
// must be safe for concurrent use.
type RateLimitRepository interface {
	// IncrementWindow increments the counter for employeeID in the current window
	// and makes the key expire after ttl. Returns the new count and the window start.
	IncrementWindow(ctx context.Context, employeeID uuid.UUID, window time.Duration, keyPrefix string, ttl time.Duration) (count int, windowStart time.Time, err error)
}

// RateLimiterService limits requests per employee.
type RateLimiterService interface {
	// Allow consumes one request unit for the employee.
	// remaining: requests still allowed in the current window after this one (>=0)
	// limit: configured max requests per window
	// reset: when the current window ends
	Allow(ctx context.Context, employeeID uuid.UUID) (allowed bool, remaining int, limit int, reset time.Time, err error)
}
