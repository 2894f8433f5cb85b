package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/core/domain/attendance"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/apicache"
)

type AttendanceService struct {
	api    ports.AttendanceAPI
	cache  ports.ResponseCache
	ttl    TTLPolicy
	logger *logrus.Logger
}

func NewAttendanceService(api ports.AttendanceAPI, cache ports.ResponseCache, ttl TTLPolicy, logger *logrus.Logger) *AttendanceService {
	return &AttendanceService{api: api, cache: cache, ttl: ttl, logger: logger}
}

func (s *AttendanceService) Today(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) (*attendance.Today, error) {
	key := employeeKey(employeeID, SectionAttendance, "today")
	today, err := apicache.GetOrCompute(ctx, s.cache, key, s.ttl.Short, s.api.GetToday, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	return today, nil
}

func (s *AttendanceService) History(ctx context.Context, employeeID uuid.UUID, month string, forceRefresh bool) (*attendance.History, error) {
	month, err := attendance.ParseMonth(month, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	key := employeeKey(employeeID, SectionAttendance, "history", month)
	history, err := apicache.GetOrCompute(ctx, s.cache, key, s.ttl.Medium, func(ctx context.Context) (*attendance.History, error) {
		return s.api.GetHistory(ctx, month)
	}, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}
	return history, nil
}

func (s *AttendanceService) CheckIn(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error) {
	return s.check(ctx, employeeID, req, "check-in", s.api.CheckIn)
}

func (s *AttendanceService) CheckOut(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error) {
	return s.check(ctx, employeeID, req, "check-out", s.api.CheckOut)
}

func (s *AttendanceService) check(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest, action string,
	call func(context.Context, *attendance.CheckRequest) (*attendance.Record, error)) (*attendance.Record, error) {
	if req == nil {
		req = &attendance.CheckRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	rec, err := call(ctx, req)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "action": action}).WithError(err).Error("attendance update failed")
		}
		return nil, fmt.Errorf("failed to %s: %w", action, err)
	}
	s.cache.InvalidateByPrefix(sectionPrefix(employeeID, SectionAttendance))
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "action": action}).Info("attendance updated")
	}
	return rec, nil
}

var _ ports.AttendanceService = (*AttendanceService)(nil)
