package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/core/domain/leave"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/apicache"
)

type LeaveService struct {
	api    ports.LeaveAPI
	cache  ports.ResponseCache
	ttl    TTLPolicy
	logger *logrus.Logger
}

func NewLeaveService(api ports.LeaveAPI, cache ports.ResponseCache, ttl TTLPolicy, logger *logrus.Logger) *LeaveService {
	return &LeaveService{api: api, cache: cache, ttl: ttl, logger: logger}
}

func (s *LeaveService) Balance(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Balance, error) {
	key := employeeKey(employeeID, SectionLeave, "balance")
	balance, err := apicache.GetOrCompute(ctx, s.cache, key, s.ttl.Medium, s.api.GetBalance, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balance: %w", err)
	}
	return balance, nil
}

func (s *LeaveService) Requests(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Request, error) {
	key := employeeKey(employeeID, SectionLeave, "requests")
	requests, err := apicache.GetOrCompute(ctx, s.cache, key, s.ttl.Medium, s.api.ListRequests, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// Types changes rarely, so it is kept for the long TTL.
func (s *LeaveService) Types(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Type, error) {
	key := employeeKey(employeeID, SectionLeave, "types")
	types, err := apicache.GetOrCompute(ctx, s.cache, key, s.ttl.Long, s.api.ListTypes, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	return types, nil
}

func (s *LeaveService) Submit(ctx context.Context, employeeID uuid.UUID, req *leave.SubmitRequest) (*leave.Request, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: missing leave request", ErrInvalidInput)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	created, err := s.api.SubmitRequest(ctx, req)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "leave_type_id": req.LeaveTypeID}).WithError(err).Error("failed to submit leave request")
		}
		return nil, fmt.Errorf("failed to submit leave request: %w", err)
	}
	s.invalidate(employeeID, "submit")
	return created, nil
}

func (s *LeaveService) Cancel(ctx context.Context, employeeID uuid.UUID, requestID string) (*leave.Request, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, fmt.Errorf("%w: missing leave request id", ErrInvalidInput)
	}
	cancelled, err := s.api.CancelRequest(ctx, requestID)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "request_id": requestID}).WithError(err).Error("failed to cancel leave request")
		}
		return nil, fmt.Errorf("failed to cancel leave request: %w", err)
	}
	s.invalidate(employeeID, "cancel")
	return cancelled, nil
}

// invalidate drops balance and request lists; both change with any request.
func (s *LeaveService) invalidate(employeeID uuid.UUID, action string) {
	s.cache.InvalidateByPrefix(sectionPrefix(employeeID, SectionLeave))
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "action": action}).Debug("leave cache invalidated")
	}
}

var _ ports.LeaveService = (*LeaveService)(nil)
