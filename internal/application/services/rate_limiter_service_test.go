package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/avatarctic/hr-gateway/internal/application/services"
	"github.com/avatarctic/hr-gateway/internal/mocks"
)

func TestRateLimiter_BurstWindow(t *testing.T) {
	count := 0
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	var gotPrefix string
	var gotEmployee uuid.UUID
	repo := &mocks.RateLimitRepositoryMock{IncrementWindowFn: func(ctx context.Context, employeeID uuid.UUID, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
		count++
		gotPrefix, gotEmployee = keyPrefix, employeeID
		assert.Equal(t, 2*window, ttl)
		return count, start, nil
	}}
	svc := impl.NewRateLimiterService(repo, &impl.RateLimiterConfig{RequestsPerMinute: 2, BurstMultiplier: 1.5}, nil)
	emp := uuid.New()

	allowed, remaining, limit, reset, err := svc.Allow(context.Background(), emp)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 2, remaining)
	assert.Equal(t, 2, limit)
	assert.Equal(t, start.Add(time.Minute), reset)
	assert.Equal(t, "ratelimit:employee", gotPrefix)
	assert.Equal(t, emp, gotEmployee)

	_, _, _, _, _ = svc.Allow(context.Background(), emp)
	allowed, remaining, _, _, err = svc.Allow(context.Background(), emp)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _, _, _, err = svc.Allow(context.Background(), emp)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	boom := errors.New("redis down")
	repo := &mocks.RateLimitRepositoryMock{IncrementWindowFn: func(ctx context.Context, employeeID uuid.UUID, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
		return 0, time.Now(), boom
	}}
	svc := impl.NewRateLimiterService(repo, nil, quietLogger())

	allowed, remaining, limit, _, err := svc.Allow(context.Background(), uuid.New())
	require.ErrorIs(t, err, boom)
	assert.True(t, allowed)
	assert.Equal(t, 120, limit)
	assert.Equal(t, 240, remaining)
}
