package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/avatarctic/hr-gateway/internal/core/domain/reference"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/apicache"
)

// ReferenceService serves company wide data. Its keys are not employee
// scoped, so the first caller's token fills the cache for everyone.
type ReferenceService struct {
	api   ports.ReferenceAPI
	cache ports.ResponseCache
	ttl   TTLPolicy
}

func NewReferenceService(api ports.ReferenceAPI, cache ports.ResponseCache, ttl TTLPolicy) *ReferenceService {
	return &ReferenceService{api: api, cache: cache, ttl: ttl}
}

func (s *ReferenceService) Holidays(ctx context.Context, year int, forceRefresh bool) ([]reference.Holiday, error) {
	year, err := reference.ParseYear(year, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	key := "ref_holidays:" + strconv.Itoa(year)
	holidays, err := apicache.GetOrCompute(ctx, s.cache, key, s.ttl.Long, func(ctx context.Context) ([]reference.Holiday, error) {
		return s.api.ListHolidays(ctx, year)
	}, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays for %d: %w", year, err)
	}
	return holidays, nil
}

var _ ports.ReferenceService = (*ReferenceService)(nil)
