package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/core/ports"
)

type CacheService struct {
	cache  ports.ResponseCache
	logger *logrus.Logger
}

func NewCacheService(cache ports.ResponseCache, logger *logrus.Logger) *CacheService {
	return &CacheService{cache: cache, logger: logger}
}

// Refresh drops one section of the employee's cached data, or all of it for
// SectionAll. Shared reference data is left alone.
func (s *CacheService) Refresh(ctx context.Context, employeeID uuid.UUID, section string) error {
	var prefix string
	switch section {
	case SectionAttendance, SectionLeave, SectionTimeslip, SectionMessage:
		prefix = sectionPrefix(employeeID, section)
	case SectionAll:
		prefix = employeePrefix(employeeID)
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalidInput, ErrUnknownSection, section)
	}
	s.cache.InvalidateByPrefix(prefix)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "section": section}).Info("cache refreshed on request")
	}
	return nil
}

var _ ports.CacheService = (*CacheService)(nil)
