package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/avatarctic/hr-gateway/internal/application/services"
	"github.com/avatarctic/hr-gateway/internal/core/domain/leave"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/hrapi"
	"github.com/avatarctic/hr-gateway/internal/mocks"
)

type leaveCalls struct{ balance, requests, types int }

func leaveAPI(c *leaveCalls) *mocks.HRClientMock {
	return &mocks.HRClientMock{
		GetBalanceFn: func(ctx context.Context) ([]leave.Balance, error) {
			c.balance++
			return []leave.Balance{{LeaveTypeID: "annual", Remaining: 12}}, nil
		},
		ListRequestsFn: func(ctx context.Context) ([]leave.Request, error) {
			c.requests++
			return []leave.Request{{ID: "lr-1", Status: leave.StatusPending}}, nil
		},
		ListTypesFn: func(ctx context.Context) ([]leave.Type, error) {
			c.types++
			return []leave.Type{{ID: "annual", Name: "Annual"}}, nil
		},
	}
}

func TestLeave_TTLClasses(t *testing.T) {
	store, clk := newStore(t)
	var c leaveCalls
	svc := impl.NewLeaveService(leaveAPI(&c), store, ttl, nil)
	emp := uuid.New()
	ctx := context.Background()

	load := func() {
		_, err := svc.Balance(ctx, emp, false)
		require.NoError(t, err)
		_, err = svc.Requests(ctx, emp, false)
		require.NoError(t, err)
		_, err = svc.Types(ctx, emp, false)
		require.NoError(t, err)
	}

	load()
	load()
	assert.Equal(t, leaveCalls{1, 1, 1}, c)

	// past medium, within long
	clk.Add(ttl.Medium + time.Second)
	load()
	assert.Equal(t, leaveCalls{2, 2, 1}, c)

	clk.Add(ttl.Long)
	load()
	assert.Equal(t, leaveCalls{3, 3, 2}, c)
}

func TestLeaveSubmit_InvalidatesLeaveSection(t *testing.T) {
	store, _ := newStore(t)
	var c leaveCalls
	svc := impl.NewLeaveService(leaveAPI(&c), store, ttl, quietLogger())
	emp := uuid.New()
	ctx := context.Background()

	_, _ = svc.Balance(ctx, emp, false)
	_, _ = svc.Requests(ctx, emp, false)
	store.Write(emp.String()+":attendance_today", "kept")

	created, err := svc.Submit(ctx, emp, &leave.SubmitRequest{
		LeaveTypeID: "annual", StartDate: "2026-11-02", EndDate: "2026-11-04",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, []string{emp.String() + ":attendance_today"}, store.Keys())

	_, _ = svc.Balance(ctx, emp, false)
	assert.Equal(t, 2, c.balance)
}

func TestLeaveSubmit_ValidationSkipsUpstream(t *testing.T) {
	store, _ := newStore(t)
	called := false
	api := &mocks.HRClientMock{SubmitRequestFn: func(ctx context.Context, req *leave.SubmitRequest) (*leave.Request, error) {
		called = true
		return nil, nil
	}}
	svc := impl.NewLeaveService(api, store, ttl, nil)

	_, err := svc.Submit(context.Background(), uuid.New(), &leave.SubmitRequest{
		LeaveTypeID: "annual", StartDate: "2026-11-04", EndDate: "2026-11-02",
	})
	require.ErrorIs(t, err, impl.ErrInvalidInput)
	require.ErrorIs(t, err, leave.ErrInvalidRange)

	_, err = svc.Submit(context.Background(), uuid.New(), nil)
	require.ErrorIs(t, err, impl.ErrInvalidInput)
	assert.False(t, called)
}

func TestLeaveCancel(t *testing.T) {
	store, _ := newStore(t)
	emp := uuid.New()
	store.Write(emp.String()+":leave_requests", []leave.Request{{ID: "lr-1"}})

	api := &mocks.HRClientMock{CancelRequestFn: func(ctx context.Context, id string) (*leave.Request, error) {
		if id == "missing" {
			return nil, &hrapi.APIError{StatusCode: 404}
		}
		return &leave.Request{ID: id, Status: leave.StatusCancelled}, nil
	}}
	svc := impl.NewLeaveService(api, store, ttl, quietLogger())

	_, err := svc.Cancel(context.Background(), emp, "missing")
	require.ErrorIs(t, err, hrapi.ErrNotFound)
	assert.Equal(t, 1, store.Len(), "failed cancel keeps the cache")

	out, err := svc.Cancel(context.Background(), emp, "lr-1")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusCancelled, out.Status)
	assert.Equal(t, 0, store.Len())

	_, err = svc.Cancel(context.Background(), emp, "  ")
	require.ErrorIs(t, err, impl.ErrInvalidInput)
}

func TestLeaveBalance_UpstreamErrorNotCached(t *testing.T) {
	store, _ := newStore(t)
	api := &mocks.HRClientMock{GetBalanceFn: func(ctx context.Context) ([]leave.Balance, error) {
		return nil, &hrapi.APIError{StatusCode: 503}
	}}
	svc := impl.NewLeaveService(api, store, ttl, nil)

	_, err := svc.Balance(context.Background(), uuid.New(), false)
	require.ErrorIs(t, err, hrapi.ErrUnavailable)
	assert.Equal(t, 0, store.Len())
}
