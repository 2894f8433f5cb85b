package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/core/domain/timeslip"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/apicache"
)

type TimeslipService struct {
	api    ports.TimeslipAPI
	cache  ports.ResponseCache
	ttl    TTLPolicy
	logger *logrus.Logger
}

func NewTimeslipService(api ports.TimeslipAPI, cache ports.ResponseCache, ttl TTLPolicy, logger *logrus.Logger) *TimeslipService {
	return &TimeslipService{api: api, cache: cache, ttl: ttl, logger: logger}
}

func (s *TimeslipService) List(ctx context.Context, employeeID uuid.UUID, period string, forceRefresh bool) ([]timeslip.Timeslip, error) {
	period, err := timeslip.ParsePeriod(period, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	key := employeeKey(employeeID, SectionTimeslip, "list", period)
	slips, err := apicache.GetOrCompute(ctx, s.cache, key, s.ttl.Medium, func(ctx context.Context) ([]timeslip.Timeslip, error) {
		return s.api.ListTimeslips(ctx, period)
	}, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeslips: %w", err)
	}
	return slips, nil
}

func (s *TimeslipService) Submit(ctx context.Context, employeeID uuid.UUID, req *timeslip.SubmitRequest) (*timeslip.Timeslip, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: missing timeslip", ErrInvalidInput)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	slip, err := s.api.SubmitTimeslip(ctx, req)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "period": req.Period}).WithError(err).Error("failed to submit timeslip")
		}
		return nil, fmt.Errorf("failed to submit timeslip: %w", err)
	}
	s.cache.InvalidateByPrefix(sectionPrefix(employeeID, SectionTimeslip))
	return slip, nil
}

var _ ports.TimeslipService = (*TimeslipService)(nil)
