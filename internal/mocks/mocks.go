package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avatarctic/hr-gateway/internal/core/domain/attendance"
	"github.com/avatarctic/hr-gateway/internal/core/domain/auth"
	"github.com/avatarctic/hr-gateway/internal/core/domain/leave"
	"github.com/avatarctic/hr-gateway/internal/core/domain/message"
	"github.com/avatarctic/hr-gateway/internal/core/domain/reference"
	"github.com/avatarctic/hr-gateway/internal/core/domain/timeslip"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
)

var errNotConfigured = errors.New("mock: not configured")

// HRClientMock is a lightweight mock for the upstream HR API.
type HRClientMock struct {
	GetTodayFn          func(ctx context.Context) (*attendance.Today, error)
	GetHistoryFn        func(ctx context.Context, month string) (*attendance.History, error)
	CheckInFn           func(ctx context.Context, req *attendance.CheckRequest) (*attendance.Record, error)
	CheckOutFn          func(ctx context.Context, req *attendance.CheckRequest) (*attendance.Record, error)
	GetBalanceFn        func(ctx context.Context) ([]leave.Balance, error)
	ListRequestsFn      func(ctx context.Context) ([]leave.Request, error)
	ListTypesFn         func(ctx context.Context) ([]leave.Type, error)
	SubmitRequestFn     func(ctx context.Context, req *leave.SubmitRequest) (*leave.Request, error)
	CancelRequestFn     func(ctx context.Context, id string) (*leave.Request, error)
	ListTimeslipsFn     func(ctx context.Context, period string) ([]timeslip.Timeslip, error)
	SubmitTimeslipFn    func(ctx context.Context, req *timeslip.SubmitRequest) (*timeslip.Timeslip, error)
	ListConversationsFn func(ctx context.Context) ([]message.Conversation, error)
	GetThreadFn         func(ctx context.Context, conversationID string) (*message.Thread, error)
	SendMessageFn       func(ctx context.Context, conversationID string, req *message.SendRequest) (*message.Message, error)
	ListHolidaysFn      func(ctx context.Context, year int) ([]reference.Holiday, error)
	PingFn              func(ctx context.Context) error
}

func (m *HRClientMock) GetToday(ctx context.Context) (*attendance.Today, error) {
	if m.GetTodayFn != nil {
		return m.GetTodayFn(ctx)
	}
	return nil, errNotConfigured
}
func (m *HRClientMock) GetHistory(ctx context.Context, month string) (*attendance.History, error) {
	if m.GetHistoryFn != nil {
		return m.GetHistoryFn(ctx, month)
	}
	return nil, errNotConfigured
}
func (m *HRClientMock) CheckIn(ctx context.Context, req *attendance.CheckRequest) (*attendance.Record, error) {
	if m.CheckInFn != nil {
		return m.CheckInFn(ctx, req)
	}
	return &attendance.Record{Status: attendance.StatusCheckedIn}, nil
}
func (m *HRClientMock) CheckOut(ctx context.Context, req *attendance.CheckRequest) (*attendance.Record, error) {
	if m.CheckOutFn != nil {
		return m.CheckOutFn(ctx, req)
	}
	return &attendance.Record{Status: attendance.StatusPresent}, nil
}
func (m *HRClientMock) GetBalance(ctx context.Context) ([]leave.Balance, error) {
	if m.GetBalanceFn != nil {
		return m.GetBalanceFn(ctx)
	}
	return nil, errNotConfigured
}
func (m *HRClientMock) ListRequests(ctx context.Context) ([]leave.Request, error) {
	if m.ListRequestsFn != nil {
		return m.ListRequestsFn(ctx)
	}
	return nil, errNotConfigured
}
func (m *HRClientMock) ListTypes(ctx context.Context) ([]leave.Type, error) {
	if m.ListTypesFn != nil {
		return m.ListTypesFn(ctx)
	}
	return nil, errNotConfigured
}
func (m *HRClientMock) SubmitRequest(ctx context.Context, req *leave.SubmitRequest) (*leave.Request, error) {
	if m.SubmitRequestFn != nil {
		return m.SubmitRequestFn(ctx, req)
	}
	return &leave.Request{Status: leave.StatusPending}, nil
}
func (m *HRClientMock) CancelRequest(ctx context.Context, id string) (*leave.Request, error) {
	if m.CancelRequestFn != nil {
		return m.CancelRequestFn(ctx, id)
	}
	return &leave.Request{ID: id, Status: leave.StatusCancelled}, nil
}
func (m *HRClientMock) ListTimeslips(ctx context.Context, period string) ([]timeslip.Timeslip, error) {
	if m.ListTimeslipsFn != nil {
		return m.ListTimeslipsFn(ctx, period)
	}
	return nil, errNotConfigured
}
func (m *HRClientMock) SubmitTimeslip(ctx context.Context, req *timeslip.SubmitRequest) (*timeslip.Timeslip, error) {
	if m.SubmitTimeslipFn != nil {
		return m.SubmitTimeslipFn(ctx, req)
	}
	return &timeslip.Timeslip{Period: req.Period, Status: timeslip.StatusSubmitted}, nil
}
func (m *HRClientMock) ListConversations(ctx context.Context) ([]message.Conversation, error) {
	if m.ListConversationsFn != nil {
		return m.ListConversationsFn(ctx)
	}
	return nil, errNotConfigured
}
func (m *HRClientMock) GetThread(ctx context.Context, conversationID string) (*message.Thread, error) {
	if m.GetThreadFn != nil {
		return m.GetThreadFn(ctx, conversationID)
	}
	return nil, errNotConfigured
}
func (m *HRClientMock) SendMessage(ctx context.Context, conversationID string, req *message.SendRequest) (*message.Message, error) {
	if m.SendMessageFn != nil {
		return m.SendMessageFn(ctx, conversationID, req)
	}
	return &message.Message{ConversationID: conversationID, Body: req.Body}, nil
}
func (m *HRClientMock) ListHolidays(ctx context.Context, year int) ([]reference.Holiday, error) {
	if m.ListHolidaysFn != nil {
		return m.ListHolidaysFn(ctx, year)
	}
	return nil, errNotConfigured
}
func (m *HRClientMock) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

// AttendanceServiceMock mocks ports.AttendanceService.
type AttendanceServiceMock struct {
	TodayFn    func(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) (*attendance.Today, error)
	HistoryFn  func(ctx context.Context, employeeID uuid.UUID, month string, forceRefresh bool) (*attendance.History, error)
	CheckInFn  func(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error)
	CheckOutFn func(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error)
}

func (m *AttendanceServiceMock) Today(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) (*attendance.Today, error) {
	if m.TodayFn != nil {
		return m.TodayFn(ctx, employeeID, forceRefresh)
	}
	return &attendance.Today{}, nil
}
func (m *AttendanceServiceMock) History(ctx context.Context, employeeID uuid.UUID, month string, forceRefresh bool) (*attendance.History, error) {
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx, employeeID, month, forceRefresh)
	}
	return &attendance.History{Month: month}, nil
}
func (m *AttendanceServiceMock) CheckIn(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error) {
	if m.CheckInFn != nil {
		return m.CheckInFn(ctx, employeeID, req)
	}
	return &attendance.Record{}, nil
}
func (m *AttendanceServiceMock) CheckOut(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error) {
	if m.CheckOutFn != nil {
		return m.CheckOutFn(ctx, employeeID, req)
	}
	return &attendance.Record{}, nil
}

// LeaveServiceMock mocks ports.LeaveService.
type LeaveServiceMock struct {
	BalanceFn  func(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Balance, error)
	RequestsFn func(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Request, error)
	TypesFn    func(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Type, error)
	SubmitFn   func(ctx context.Context, employeeID uuid.UUID, req *leave.SubmitRequest) (*leave.Request, error)
	CancelFn   func(ctx context.Context, employeeID uuid.UUID, requestID string) (*leave.Request, error)
}

func (m *LeaveServiceMock) Balance(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Balance, error) {
	if m.BalanceFn != nil {
		return m.BalanceFn(ctx, employeeID, forceRefresh)
	}
	return []leave.Balance{}, nil
}
func (m *LeaveServiceMock) Requests(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Request, error) {
	if m.RequestsFn != nil {
		return m.RequestsFn(ctx, employeeID, forceRefresh)
	}
	return []leave.Request{}, nil
}
func (m *LeaveServiceMock) Types(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Type, error) {
	if m.TypesFn != nil {
		return m.TypesFn(ctx, employeeID, forceRefresh)
	}
	return []leave.Type{}, nil
}
func (m *LeaveServiceMock) Submit(ctx context.Context, employeeID uuid.UUID, req *leave.SubmitRequest) (*leave.Request, error) {
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, employeeID, req)
	}
	return &leave.Request{}, nil
}
func (m *LeaveServiceMock) Cancel(ctx context.Context, employeeID uuid.UUID, requestID string) (*leave.Request, error) {
	if m.CancelFn != nil {
		return m.CancelFn(ctx, employeeID, requestID)
	}
	return &leave.Request{ID: requestID}, nil
}

// TimeslipServiceMock mocks ports.TimeslipService.
type TimeslipServiceMock struct {
	ListFn   func(ctx context.Context, employeeID uuid.UUID, period string, forceRefresh bool) ([]timeslip.Timeslip, error)
	SubmitFn func(ctx context.Context, employeeID uuid.UUID, req *timeslip.SubmitRequest) (*timeslip.Timeslip, error)
}

func (m *TimeslipServiceMock) List(ctx context.Context, employeeID uuid.UUID, period string, forceRefresh bool) ([]timeslip.Timeslip, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, employeeID, period, forceRefresh)
	}
	return []timeslip.Timeslip{}, nil
}
func (m *TimeslipServiceMock) Submit(ctx context.Context, employeeID uuid.UUID, req *timeslip.SubmitRequest) (*timeslip.Timeslip, error) {
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, employeeID, req)
	}
	return &timeslip.Timeslip{}, nil
}

// MessageServiceMock mocks ports.MessageService.
type MessageServiceMock struct {
	ConversationsFn func(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]message.Conversation, error)
	ThreadFn        func(ctx context.Context, employeeID uuid.UUID, conversationID string, forceRefresh bool) (*message.Thread, error)
	SendFn          func(ctx context.Context, employeeID uuid.UUID, conversationID string, req *message.SendRequest) (*message.Message, error)
	HandleEventFn   func(ctx context.Context, evt *message.Event) error
}

func (m *MessageServiceMock) Conversations(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]message.Conversation, error) {
	if m.ConversationsFn != nil {
		return m.ConversationsFn(ctx, employeeID, forceRefresh)
	}
	return []message.Conversation{}, nil
}
func (m *MessageServiceMock) Thread(ctx context.Context, employeeID uuid.UUID, conversationID string, forceRefresh bool) (*message.Thread, error) {
	if m.ThreadFn != nil {
		return m.ThreadFn(ctx, employeeID, conversationID, forceRefresh)
	}
	return &message.Thread{}, nil
}
func (m *MessageServiceMock) Send(ctx context.Context, employeeID uuid.UUID, conversationID string, req *message.SendRequest) (*message.Message, error) {
	if m.SendFn != nil {
		return m.SendFn(ctx, employeeID, conversationID, req)
	}
	return &message.Message{}, nil
}
func (m *MessageServiceMock) HandleEvent(ctx context.Context, evt *message.Event) error {
	if m.HandleEventFn != nil {
		return m.HandleEventFn(ctx, evt)
	}
	return nil
}

// ReferenceServiceMock mocks ports.ReferenceService.
type ReferenceServiceMock struct {
	HolidaysFn func(ctx context.Context, year int, forceRefresh bool) ([]reference.Holiday, error)
}

func (m *ReferenceServiceMock) Holidays(ctx context.Context, year int, forceRefresh bool) ([]reference.Holiday, error) {
	if m.HolidaysFn != nil {
		return m.HolidaysFn(ctx, year, forceRefresh)
	}
	return []reference.Holiday{}, nil
}

// CacheServiceMock mocks ports.CacheService.
type CacheServiceMock struct {
	RefreshFn func(ctx context.Context, employeeID uuid.UUID, section string) error
}

func (m *CacheServiceMock) Refresh(ctx context.Context, employeeID uuid.UUID, section string) error {
	if m.RefreshFn != nil {
		return m.RefreshFn(ctx, employeeID, section)
	}
	return nil
}

// RateLimitRepositoryMock mocks ports.RateLimitRepository.
type RateLimitRepositoryMock struct {
	IncrementWindowFn func(ctx context.Context, employeeID uuid.UUID, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error)
}

func (m *RateLimitRepositoryMock) IncrementWindow(ctx context.Context, employeeID uuid.UUID, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	if m.IncrementWindowFn != nil {
		return m.IncrementWindowFn(ctx, employeeID, window, keyPrefix, ttl)
	}
	return 1, time.Now().Truncate(window), nil
}

// RateLimiterServiceMock mocks ports.RateLimiterService.
type RateLimiterServiceMock struct {
	AllowFn func(ctx context.Context, employeeID uuid.UUID) (bool, int, int, time.Time, error)
}

func (m *RateLimiterServiceMock) Allow(ctx context.Context, employeeID uuid.UUID) (bool, int, int, time.Time, error) {
	if m.AllowFn != nil {
		return m.AllowFn(ctx, employeeID)
	}
	return true, 1, 1, time.Now().Add(time.Minute), nil
}

// AuthServiceMock mocks ports.AuthService.
type AuthServiceMock struct {
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

func (m *AuthServiceMock) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return nil, errNotConfigured
}

// HealthCheckerMock mocks ports.HealthChecker.
type HealthCheckerMock struct {
	NameValue string
	CheckFn   func(ctx context.Context) error
}

func (m *HealthCheckerMock) Name() string { return m.NameValue }
func (m *HealthCheckerMock) Check(ctx context.Context) error {
	if m.CheckFn != nil {
		return m.CheckFn(ctx)
	}
	return nil
}

var (
	_ ports.HRClient            = (*HRClientMock)(nil)
	_ ports.AttendanceService   = (*AttendanceServiceMock)(nil)
	_ ports.LeaveService        = (*LeaveServiceMock)(nil)
	_ ports.TimeslipService     = (*TimeslipServiceMock)(nil)
	_ ports.MessageService      = (*MessageServiceMock)(nil)
	_ ports.ReferenceService    = (*ReferenceServiceMock)(nil)
	_ ports.CacheService        = (*CacheServiceMock)(nil)
	_ ports.RateLimitRepository = (*RateLimitRepositoryMock)(nil)
	_ ports.RateLimiterService  = (*RateLimiterServiceMock)(nil)
	_ ports.AuthService         = (*AuthServiceMock)(nil)
	_ ports.HealthChecker       = (*HealthCheckerMock)(nil)
)
