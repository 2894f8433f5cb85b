package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/avatarctic/hr-gateway/internal/application/services"
	"github.com/avatarctic/hr-gateway/internal/core/domain/reference"
	"github.com/avatarctic/hr-gateway/internal/mocks"
)

func TestReferenceHolidays_GlobalLongLived(t *testing.T) {
	store, clk := newStore(t)
	calls := 0
	api := &mocks.HRClientMock{ListHolidaysFn: func(ctx context.Context, year int) ([]reference.Holiday, error) {
		calls++
		return []reference.Holiday{{Date: "2026-12-25", Name: "Christmas", Type: reference.HolidayPublic}}, nil
	}}
	svc := impl.NewReferenceService(api, store, ttl)

	h, err := svc.Holidays(context.Background(), 2026, false)
	require.NoError(t, err)
	require.Len(t, h, 1)

	clk.Add(10 * time.Minute)
	_, err = svc.Holidays(context.Background(), 2026, false)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"ref_holidays:2026"}, store.Keys())

	// an employee wide refresh does not touch shared data
	require.NoError(t, impl.NewCacheService(store, nil).Refresh(context.Background(), uuid.New(), impl.SectionAll))
	assert.Equal(t, 1, store.Len())
}

func TestReferenceHolidays_Year(t *testing.T) {
	store, _ := newStore(t)
	var years []int
	api := &mocks.HRClientMock{ListHolidaysFn: func(ctx context.Context, year int) ([]reference.Holiday, error) {
		years = append(years, year)
		return nil, nil
	}}
	svc := impl.NewReferenceService(api, store, ttl)

	_, err := svc.Holidays(context.Background(), 0, false)
	require.NoError(t, err)
	_, err = svc.Holidays(context.Background(), 12, false)
	require.ErrorIs(t, err, reference.ErrInvalidYear)

	assert.Equal(t, []int{time.Now().Year()}, years)
}
