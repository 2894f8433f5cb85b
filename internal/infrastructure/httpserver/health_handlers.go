package httpserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

// healthCheck probes every dependency in parallel. Any failure makes the
// gateway "degraded" and answers 503 so load balancers can react.
func (s *Server) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		deps = make(map[string]string, len(s.healthCheckers))
	)
	overall := "healthy"
	for _, hc := range s.healthCheckers {
		if hc == nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := "healthy"
			if err := hc.Check(ctx); err != nil {
				status = "unhealthy"
				if s.logger != nil {
					s.logger.WithError(err).WithField("dependency", hc.Name()).Warn("health check failed")
				}
			}
			mu.Lock()
			deps[hc.Name()] = status
			if status != "healthy" {
				overall = "degraded"
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	health := map[string]interface{}{
		"status":       overall,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"version":      "1.0.0",
		"service":      "hr-gateway",
		"dependencies": deps,
	}
	code := http.StatusOK
	if overall != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, health)
}
