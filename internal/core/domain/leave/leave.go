package leave

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// DateLayout is the format of leave start and end dates.
const DateLayout = "2006-01-02"

var (
	ErrLeaveTypeRequired = errors.New("leave_type_id is required")
	ErrInvalidDate       = errors.New("dates must be formatted as YYYY-MM-DD")
	ErrInvalidRange      = errors.New("end_date must not be before start_date")
	ErrHalfDayRange      = errors.New("a half day leave must start and end on the same date")
	ErrReasonTooLong     = errors.New("reason must be at most 500 characters")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Cancellable reports whether a request in this status may still be cancelled.
func (s Status) Cancellable() bool {
	return slices.Contains([]Status{StatusPending, StatusApproved}, s)
}

type Type struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	Name               string `json:"name"`
	MaxDaysPerYear     int    `json:"max_days_per_year"`
	Paid               bool   `json:"paid"`
	RequiresAttachment bool   `json:"requires_attachment"`
}

type Balance struct {
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	Entitled      float64 `json:"entitled"`
	Used          float64 `json:"used"`
	Pending       float64 `json:"pending"`
	Remaining     float64 `json:"remaining"`
}

type Request struct {
	ID          string    `json:"id"`
	LeaveTypeID string    `json:"leave_type_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Days        float64   `json:"days"`
	HalfDay     bool      `json:"half_day"`
	Reason      string    `json:"reason,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SubmitRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	HalfDay     bool   `json:"half_day"`
	Reason      string `json:"reason,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	if strings.TrimSpace(r.LeaveTypeID) == "" {
		return ErrLeaveTypeRequired
	}
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return ErrInvalidDate
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return ErrInvalidDate
	}
	if end.Before(start) {
		return ErrInvalidRange
	}
	if r.HalfDay && !end.Equal(start) {
		return ErrHalfDayRange
	}
	if len([]rune(r.Reason)) > 500 {
		return ErrReasonTooLong
	}
	return nil
}
