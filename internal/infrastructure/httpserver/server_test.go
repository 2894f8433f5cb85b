package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/avatarctic/hr-gateway/internal/application/services"
	"github.com/avatarctic/hr-gateway/internal/core/domain/attendance"
	"github.com/avatarctic/hr-gateway/internal/core/domain/auth"
	"github.com/avatarctic/hr-gateway/internal/core/domain/leave"
	"github.com/avatarctic/hr-gateway/internal/core/domain/message"
	"github.com/avatarctic/hr-gateway/internal/core/domain/reference"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/hrapi"
	gateway "github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver"
	"github.com/avatarctic/hr-gateway/internal/mocks"
)

const testSecret = "gateway-test-secret"

type ServerSuite struct {
	suite.Suite

	attendance  *mocks.AttendanceServiceMock
	leave       *mocks.LeaveServiceMock
	timeslip    *mocks.TimeslipServiceMock
	messages    *mocks.MessageServiceMock
	reference   *mocks.ReferenceServiceMock
	cache       *mocks.CacheServiceMock
	rateLimiter *mocks.RateLimiterServiceMock
	checkers    []ports.HealthChecker

	employeeID uuid.UUID
	token      string
	ts         *httptest.Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.attendance = &mocks.AttendanceServiceMock{}
	s.leave = &mocks.LeaveServiceMock{}
	s.timeslip = &mocks.TimeslipServiceMock{}
	s.messages = &mocks.MessageServiceMock{}
	s.reference = &mocks.ReferenceServiceMock{}
	s.cache = &mocks.CacheServiceMock{}
	s.rateLimiter = &mocks.RateLimiterServiceMock{}
	s.checkers = nil

	s.employeeID = uuid.New()
	s.token = s.sign(s.employeeID.String(), time.Hour, testSecret)
	s.start()
}

// start (re)builds the server so tests can change checkers before serving.
func (s *ServerSuite) start() {
	if s.ts != nil {
		s.ts.Close()
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	srv := gateway.NewServer(&gateway.ServerConfig{
		Host:           "127.0.0.1",
		Port:           "0",
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		IdleTimeout:    time.Second,
		AllowedOrigins: []string{"*"},
	}, logger, gateway.ServerDeps{
		AttendanceService:  s.attendance,
		LeaveService:       s.leave,
		TimeslipService:    s.timeslip,
		MessageService:     s.messages,
		ReferenceService:   s.reference,
		CacheService:       s.cache,
		AuthService:        services.NewAuthService(testSecret, "", logger),
		RateLimiterService: s.rateLimiter,
		HealthCheckers:     s.checkers,
	})
	s.ts = httptest.NewServer(srv.Echo())
}

func (s *ServerSuite) TearDownTest() {
	s.ts.Close()
	s.ts = nil
}

func (s *ServerSuite) sign(sub string, exp time.Duration, secret string) string {
	claims := auth.Claims{
		Name: "Grace",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	s.Require().NoError(err)
	return signed
}

func (s *ServerSuite) do(method, path string, body any, token string) (*http.Response, []byte) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.ts.URL+path, r)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, data
}

func (s *ServerSuite) errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(data, &body))
	return body.Message
}

func (s *ServerSuite) TestHealth() {
	resp, data := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(data), `"service":"hr-gateway"`)

	s.checkers = []ports.HealthChecker{
		&mocks.HealthCheckerMock{NameValue: "redis"},
		&mocks.HealthCheckerMock{NameValue: "hr_api", CheckFn: func(ctx context.Context) error { return errors.New("down") }},
	}
	s.start()
	resp, data = s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusServiceUnavailable, resp.StatusCode)

	var health struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	s.Require().NoError(json.Unmarshal(data, &health))
	s.Equal("degraded", health.Status)
	s.Equal(map[string]string{"redis": "healthy", "hr_api": "unhealthy"}, health.Dependencies)
}

func (s *ServerSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/api/v1/attendance/today", nil, s.token)
	resp, data := s.do(http.MethodGet, "/metrics", nil, "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(data), "http_requests_total")
}

func (s *ServerSuite) TestRequiresValidToken() {
	tests := map[string]string{
		"missing":      "",
		"garbage":      "not-a-jwt",
		"wrong secret": s.sign(s.employeeID.String(), time.Hour, "other-secret"),
		"expired":      s.sign(s.employeeID.String(), -time.Minute, testSecret),
		"bad subject":  s.sign("employee-42", time.Hour, testSecret),
	}
	for name, token := range tests {
		resp, _ := s.do(http.MethodGet, "/api/v1/leave/balance", nil, token)
		s.Equal(http.StatusUnauthorized, resp.StatusCode, name)
	}
}

func (s *ServerSuite) TestAttendanceToday_ForwardsCallerAndRefresh() {
	var gotEmployee uuid.UUID
	var gotRefresh bool
	var gotToken, gotRequestID string
	s.attendance.TodayFn = func(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) (*attendance.Today, error) {
		gotEmployee, gotRefresh = employeeID, forceRefresh
		gotToken, _ = hrapi.TokenFromContext(ctx)
		gotRequestID, _ = hrapi.RequestIDFromContext(ctx)
		return &attendance.Today{CanCheckIn: true}, nil
	}

	resp, data := s.do(http.MethodGet, "/api/v1/attendance/today?refresh=true", nil, s.token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(s.employeeID, gotEmployee)
	s.True(gotRefresh)
	s.Equal(s.token, gotToken)
	s.Equal(resp.Header.Get(echo.HeaderXRequestID), gotRequestID)
	s.Contains(string(data), `"can_check_in":true`)

	resp, _ = s.do(http.MethodGet, "/api/v1/attendance/today", nil, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.False(gotRefresh)
}

func (s *ServerSuite) TestAttendanceHistory_PassesMonth() {
	var gotMonth string
	s.attendance.HistoryFn = func(ctx context.Context, employeeID uuid.UUID, month string, forceRefresh bool) (*attendance.History, error) {
		gotMonth = month
		return &attendance.History{Month: month}, nil
	}
	resp, _ := s.do(http.MethodGet, "/api/v1/attendance/history?month=2026-09", nil, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("2026-09", gotMonth)
}

func (s *ServerSuite) TestCheckIn() {
	var got *attendance.CheckRequest
	s.attendance.CheckInFn = func(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error) {
		got = req
		return &attendance.Record{Status: attendance.StatusCheckedIn}, nil
	}

	resp, _ := s.do(http.MethodPost, "/api/v1/attendance/check-in", nil, s.token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NotNil(got)
	s.Nil(got.Latitude)

	lat, lng := 1.29, 103.85
	resp, _ = s.do(http.MethodPost, "/api/v1/attendance/check-in", attendance.CheckRequest{Latitude: &lat, Longitude: &lng}, s.token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(lat, *got.Latitude)
}

func (s *ServerSuite) TestCheckOut_RejectsBadCoordinates() {
	called := false
	s.attendance.CheckOutFn = func(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error) {
		called = true
		return &attendance.Record{}, nil
	}
	lat := 91.0
	resp, data := s.do(http.MethodPost, "/api/v1/attendance/check-out", map[string]any{"latitude": lat, "longitude": 0}, s.token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(attendance.ErrInvalidCoordinates.Error(), s.errorMessage(data))
	s.False(called)
}

func (s *ServerSuite) TestSubmitLeave() {
	var got *leave.SubmitRequest
	s.leave.SubmitFn = func(ctx context.Context, employeeID uuid.UUID, req *leave.SubmitRequest) (*leave.Request, error) {
		got = req
		return &leave.Request{ID: "lr-1", Status: leave.StatusPending}, nil
	}

	resp, _ := s.do(http.MethodPost, "/api/v1/leave/requests", map[string]any{"leave_type_id": "annual", "start_date": "2026-11-02", "end_date": "2026-10-30"}, s.token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Nil(got)

	resp, data := s.do(http.MethodPost, "/api/v1/leave/requests", leave.SubmitRequest{LeaveTypeID: "annual", StartDate: "2026-11-02", EndDate: "2026-11-03"}, s.token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("annual", got.LeaveTypeID)
	s.Contains(string(data), `"id":"lr-1"`)
}

func (s *ServerSuite) TestCancelLeave_UsesPathID() {
	var gotID string
	s.leave.CancelFn = func(ctx context.Context, employeeID uuid.UUID, requestID string) (*leave.Request, error) {
		gotID = requestID
		return &leave.Request{ID: requestID, Status: leave.StatusCancelled}, nil
	}
	resp, _ := s.do(http.MethodPost, "/api/v1/leave/requests/lr-9/cancel", nil, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("lr-9", gotID)
}

func (s *ServerSuite) TestSendMessage() {
	var gotConversation string
	s.messages.SendFn = func(ctx context.Context, employeeID uuid.UUID, conversationID string, req *message.SendRequest) (*message.Message, error) {
		gotConversation = conversationID
		return &message.Message{ID: "m-1", ConversationID: conversationID, SenderID: employeeID, Body: req.Body}, nil
	}

	resp, _ := s.do(http.MethodPost, "/api/v1/messages/conversations/c-7", message.SendRequest{Body: "   "}, s.token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, data := s.do(http.MethodPost, "/api/v1/messages/conversations/c-7", message.SendRequest{Body: "hi"}, s.token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("c-7", gotConversation)
	s.Contains(string(data), `"body":"hi"`)
}

func (s *ServerSuite) TestHolidays_Year() {
	var gotYear int
	s.reference.HolidaysFn = func(ctx context.Context, year int, forceRefresh bool) ([]reference.Holiday, error) {
		gotYear = year
		return []reference.Holiday{{Name: "New Year"}}, nil
	}

	resp, _ := s.do(http.MethodGet, "/api/v1/reference/holidays?year=abc", nil, s.token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(http.MethodGet, "/api/v1/reference/holidays?year=2027", nil, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(2027, gotYear)

	resp, _ = s.do(http.MethodGet, "/api/v1/reference/holidays", nil, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(0, gotYear)
}

func (s *ServerSuite) TestRefreshCache() {
	var sections []string
	s.cache.RefreshFn = func(ctx context.Context, employeeID uuid.UUID, section string) error {
		s.Equal(s.employeeID, employeeID)
		sections = append(sections, section)
		if section == "payroll" {
			return fmt.Errorf("%w: %w %q", services.ErrInvalidInput, services.ErrUnknownSection, section)
		}
		return nil
	}

	resp, _ := s.do(http.MethodPost, "/api/v1/cache/refresh", nil, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp, _ = s.do(http.MethodPost, "/api/v1/cache/refresh", map[string]string{"section": "leave"}, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp, _ = s.do(http.MethodPost, "/api/v1/cache/refresh", map[string]string{"section": "payroll"}, s.token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	s.Equal([]string{services.SectionAll, services.SectionLeave, "payroll"}, sections)
}

func (s *ServerSuite) TestServiceErrorsMapToStatus() {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("failed to get leave balance: %w", &hrapi.APIError{StatusCode: 404}), http.StatusNotFound},
		{"upstream 401", &hrapi.APIError{StatusCode: 401}, http.StatusUnauthorized},
		{"validation from upstream", &hrapi.APIError{StatusCode: 422, Message: "balance exhausted"}, http.StatusUnprocessableEntity},
		{"upstream 503", &hrapi.APIError{StatusCode: 503}, http.StatusBadGateway},
		{"transport", fmt.Errorf("%w: connection refused", hrapi.ErrUnavailable), http.StatusBadGateway},
		{"invalid input", fmt.Errorf("%w: bad", services.ErrInvalidInput), http.StatusBadRequest},
	}
	for _, tt := range tests {
		err := tt.err
		s.leave.BalanceFn = func(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]leave.Balance, error) {
			return nil, err
		}
		resp, _ := s.do(http.MethodGet, "/api/v1/leave/balance", nil, s.token)
		s.Equal(tt.code, resp.StatusCode, tt.name)
	}
}

func (s *ServerSuite) TestRateLimited() {
	reset := time.Now().Add(30 * time.Second)
	s.rateLimiter.AllowFn = func(ctx context.Context, employeeID uuid.UUID) (bool, int, int, time.Time, error) {
		return false, 0, 120, reset, nil
	}
	resp, _ := s.do(http.MethodGet, "/api/v1/timeslips", nil, s.token)
	s.Equal(http.StatusTooManyRequests, resp.StatusCode)
	s.Equal("120", resp.Header.Get("X-RateLimit-Limit"))
	s.Equal("0", resp.Header.Get("X-RateLimit-Remaining"))
}

func (s *ServerSuite) TestRateLimiterFailureFailsOpen() {
	s.rateLimiter.AllowFn = func(ctx context.Context, employeeID uuid.UUID) (bool, int, int, time.Time, error) {
		return false, 0, 0, time.Now(), errors.New("redis down")
	}
	resp, _ := s.do(http.MethodGet, "/api/v1/timeslips", nil, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)
}
