package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/avatarctic/hr-gateway/internal/core/domain/attendance"
	"github.com/avatarctic/hr-gateway/internal/core/domain/leave"
	"github.com/avatarctic/hr-gateway/internal/core/domain/message"
	"github.com/avatarctic/hr-gateway/internal/core/domain/reference"
	"github.com/avatarctic/hr-gateway/internal/core/domain/timeslip"
)

// Read methods take forceRefresh to skip a fresh cached value (pull to refresh).
// Mutations invalidate the employee's cached data for the affected section.

type AttendanceService interface {
	Today(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) (*attendance.Today, error)
	History(ctx context.Context, employeeID uuid.UUID, month string, forceRefresh bool) (*attendance.History, error)
	CheckIn(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error)
	CheckOut(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error)
}

type LeaveService interface {
	Balance(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Balance, error)
	Requests(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Request, error)
	Types(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Type, error)
	Submit(ctx context.Context, employeeID uuid.UUID, req *leave.SubmitRequest) (*leave.Request, error)
	Cancel(ctx context.Context, employeeID uuid.UUID, requestID string) (*leave.Request, error)
}

type TimeslipService interface {
	List(ctx context.Context, employeeID uuid.UUID, period string, forceRefresh bool) ([]timeslip.Timeslip, error)
	Submit(ctx context.Context, employeeID uuid.UUID, req *timeslip.SubmitRequest) (*timeslip.Timeslip, error)
}

type MessageService interface {
	EventHandler
	Conversations(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]message.Conversation, error)
	Thread(ctx context.Context, employeeID uuid.UUID, conversationID string, forceRefresh bool) (*message.Thread, error)
	Send(ctx context.Context, employeeID uuid.UUID, conversationID string, req *message.SendRequest) (*message.Message, error)
}

type ReferenceService interface {
	Holidays(ctx context.Context, year int, forceRefresh bool) ([]reference.Holiday, error)
}

// CacheService drops cached data on explicit user request.
type CacheService interface {
	Refresh(ctx context.Context, employeeID uuid.UUID, section string) error
}
