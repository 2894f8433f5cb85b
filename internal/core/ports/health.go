package ports

import "context"

// HealthChecker probes one dependency (redis, the HR API). Check returns an
// error when the dependency is unhealthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
