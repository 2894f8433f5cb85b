package hrapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/avatarctic/hr-gateway/internal/core/domain/attendance"
	"github.com/avatarctic/hr-gateway/internal/core/domain/leave"
	"github.com/avatarctic/hr-gateway/internal/core/domain/message"
	"github.com/avatarctic/hr-gateway/internal/core/domain/reference"
	"github.com/avatarctic/hr-gateway/internal/core/domain/timeslip"
)

// Attendance

func (c *Client) GetToday(ctx context.Context) (*attendance.Today, error) {
	var out attendance.Today
	if err := c.get(ctx, "/attendance/today", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetHistory(ctx context.Context, month string) (*attendance.History, error) {
	var out attendance.History
	if err := c.get(ctx, "/attendance/history", url.Values{"month": {month}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckIn(ctx context.Context, req *attendance.CheckRequest) (*attendance.Record, error) {
	var out attendance.Record
	if err := c.post(ctx, "/attendance/check-in", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckOut(ctx context.Context, req *attendance.CheckRequest) (*attendance.Record, error) {
	var out attendance.Record
	if err := c.post(ctx, "/attendance/check-out", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leave

func (c *Client) GetBalance(ctx context.Context) ([]leave.Balance, error) {
	var out []leave.Balance
	if err := c.get(ctx, "/leave/balance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRequests(ctx context.Context) ([]leave.Request, error) {
	var out []leave.Request
	if err := c.get(ctx, "/leave/requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTypes(ctx context.Context) ([]leave.Type, error) {
	var out []leave.Type
	if err := c.get(ctx, "/leave/types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitRequest(ctx context.Context, req *leave.SubmitRequest) (*leave.Request, error) {
	var out leave.Request
	if err := c.post(ctx, "/leave/requests", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelRequest(ctx context.Context, id string) (*leave.Request, error) {
	var out leave.Request
	if err := c.post(ctx, "/leave/requests/"+url.PathEscape(id)+"/cancel", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Timeslips

func (c *Client) ListTimeslips(ctx context.Context, period string) ([]timeslip.Timeslip, error) {
	var out []timeslip.Timeslip
	if err := c.get(ctx, "/timeslips", url.Values{"period": {period}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitTimeslip(ctx context.Context, req *timeslip.SubmitRequest) (*timeslip.Timeslip, error) {
	var out timeslip.Timeslip
	if err := c.post(ctx, "/timeslips", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Messages

func (c *Client) ListConversations(ctx context.Context) ([]message.Conversation, error) {
	var out []message.Conversation
	if err := c.get(ctx, "/messages/conversations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetThread(ctx context.Context, conversationID string) (*message.Thread, error) {
	var out message.Thread
	if err := c.get(ctx, "/messages/conversations/"+url.PathEscape(conversationID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendMessage(ctx context.Context, conversationID string, req *message.SendRequest) (*message.Message, error) {
	var out message.Message
	if err := c.post(ctx, "/messages/conversations/"+url.PathEscape(conversationID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reference data

func (c *Client) ListHolidays(ctx context.Context, year int) ([]reference.Holiday, error) {
	var out []reference.Holiday
	if err := c.get(ctx, "/reference/holidays", url.Values{"year": {strconv.Itoa(year)}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
