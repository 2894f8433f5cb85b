package ports

import (
	"context"

	"github.com/avatarctic/hr-gateway/internal/core/domain/attendance"
	"github.com/avatarctic/hr-gateway/internal/core/domain/leave"
	"github.com/avatarctic/hr-gateway/internal/core/domain/message"
	"github.com/avatarctic/hr-gateway/internal/core/domain/reference"
	"github.com/avatarctic/hr-gateway/internal/core/domain/timeslip"
)

// The upstream HR API acts on behalf of the employee whose bearer token is
// carried in ctx, so none of these methods take an employee id.

type AttendanceAPI interface {
	GetToday(ctx context.Context) (*attendance.Today, error)
	GetHistory(ctx context.Context, month string) (*attendance.History, error)
	CheckIn(ctx context.Context, req *attendance.CheckRequest) (*attendance.Record, error)
	CheckOut(ctx context.Context, req *attendance.CheckRequest) (*attendance.Record, error)
}

type LeaveAPI interface {
	GetBalance(ctx context.Context) ([]leave.Balance, error)
	ListRequests(ctx context.Context) ([]leave.Request, error)
	ListTypes(ctx context.Context) ([]leave.Type, error)
	SubmitRequest(ctx context.Context, req *leave.SubmitRequest) (*leave.Request, error)
	CancelRequest(ctx context.Context, id string) (*leave.Request, error)
}

type TimeslipAPI interface {
	ListTimeslips(ctx context.Context, period string) ([]timeslip.Timeslip, error)
	SubmitTimeslip(ctx context.Context, req *timeslip.SubmitRequest) (*timeslip.Timeslip, error)
}

type MessageAPI interface {
	ListConversations(ctx context.Context) ([]message.Conversation, error)
	GetThread(ctx context.Context, conversationID string) (*message.Thread, error)
	SendMessage(ctx context.Context, conversationID string, req *message.SendRequest) (*message.Message, error)
}

type ReferenceAPI interface {
	ListHolidays(ctx context.Context, year int) ([]reference.Holiday, error)
}

// HRClient is the full upstream surface.
type HRClient interface {
	AttendanceAPI
	LeaveAPI
	TimeslipAPI
	MessageAPI
	ReferenceAPI
	Ping(ctx context.Context) error
}

// EventHandler consumes events pushed by the upstream event stream.
type EventHandler interface {
	HandleEvent(ctx context.Context, evt *message.Event) error
}
