package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/avatarctic/hr-gateway/internal/core/ports"
)

// RateLimitRepository keeps fixed-window request counters in Redis so every
// gateway replica shares one budget per employee.
type RateLimitRepository struct {
	r   redis.Cmdable
	now func() time.Time
}

func NewRateLimitRepository(r redis.Cmdable) *RateLimitRepository {
	return &RateLimitRepository{r: r, now: time.Now}
}

// IncrementWindow increments the employee's counter for the current window.
// Keys look like <prefix>:<employeeID>:<window start unix>.
func (repo *RateLimitRepository) IncrementWindow(ctx context.Context, employeeID uuid.UUID, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	windowStart := repo.now().Truncate(window)
	key := windowKey(keyPrefix, employeeID, windowStart)
	pipe := repo.r.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, windowStart, fmt.Errorf("failed to increment rate limit window: %w", err)
	}
	return int(incr.Val()), windowStart, nil
}

func windowKey(prefix string, employeeID uuid.UUID, windowStart time.Time) string {
	return fmt.Sprintf("%s:%s:%d", prefix, employeeID.String(), windowStart.Unix())
}

var _ ports.RateLimitRepository = (*RateLimitRepository)(nil)
