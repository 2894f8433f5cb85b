package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avatarctic/hr-gateway/internal/core/domain/attendance"
)

func ptr(f float64) *float64 { return &f }

func TestCheckRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  attendance.CheckRequest
		ok   bool
	}{
		{"no location", attendance.CheckRequest{Note: "remote"}, true},
		{"location", attendance.CheckRequest{Latitude: ptr(-33.86), Longitude: ptr(151.2)}, true},
		{"edges", attendance.CheckRequest{Latitude: ptr(90), Longitude: ptr(-180)}, true},
		{"latitude only", attendance.CheckRequest{Latitude: ptr(1)}, false},
		{"longitude only", attendance.CheckRequest{Longitude: ptr(1)}, false},
		{"latitude out of range", attendance.CheckRequest{Latitude: ptr(90.5), Longitude: ptr(0)}, false},
		{"longitude out of range", attendance.CheckRequest{Latitude: ptr(0), Longitude: ptr(181)}, false},
	}
	for _, tt := range tests {
		err := tt.req.Validate()
		if tt.ok {
			assert.NoError(t, err, tt.name)
		} else {
			assert.ErrorIs(t, err, attendance.ErrInvalidCoordinates, tt.name)
		}
	}
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	m, err := attendance.ParseMonth("", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-01", m)

	m, err = attendance.ParseMonth("2019-03", now)
	require.NoError(t, err)
	assert.Equal(t, "2019-03", m)

	for _, bad := range []string{"2019-3", "March", "2019-03-01"} {
		_, err = attendance.ParseMonth(bad, now)
		assert.ErrorIs(t, err, attendance.ErrInvalidMonth, bad)
	}
}
