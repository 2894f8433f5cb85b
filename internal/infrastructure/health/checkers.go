package health

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/avatarctic/hr-gateway/internal/core/ports"
)

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client redis.UniversalClient }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client redis.UniversalClient) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}

// Pinger is the part of the HR API client the upstream check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type upstreamHealthChecker struct{ api Pinger }

func (u *upstreamHealthChecker) Name() string                    { return "hr_api" }
func (u *upstreamHealthChecker) Check(ctx context.Context) error { return u.api.Ping(ctx) }

// NewUpstreamHealthChecker reports the HR API as unhealthy when its health
// endpoint does not answer with 2xx.
func NewUpstreamHealthChecker(api Pinger) ports.HealthChecker {
	return &upstreamHealthChecker{api: api}
}
