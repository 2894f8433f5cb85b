package attendance

import (
	"errors"
	"fmt"
	"time"
)

// MonthLayout is the format of the month argument accepted by History.
const MonthLayout = "2006-01"

var (
	ErrInvalidMonth       = errors.New("month must be formatted as YYYY-MM")
	ErrInvalidCoordinates = errors.New("latitude and longitude must be given together and be in range")
)

type Status string

const (
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
	StatusOnLeave    Status = "on_leave"
	StatusHoliday    Status = "holiday"
	StatusCheckedIn  Status = "checked_in"
	StatusNotStarted Status = "not_started"
)

type Record struct {
	Date          string     `json:"date"`
	Status        Status     `json:"status"`
	CheckIn       *time.Time `json:"check_in,omitempty"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
	WorkedMinutes int        `json:"worked_minutes"`
	Location      string     `json:"location,omitempty"`
}

// Today is the current day's state as shown on the home screen.
type Today struct {
	Record
	CanCheckIn  bool   `json:"can_check_in"`
	CanCheckOut bool   `json:"can_check_out"`
	ShiftStart  string `json:"shift_start,omitempty"`
	ShiftEnd    string `json:"shift_end,omitempty"`
}

type History struct {
	Month       string   `json:"month"`
	Records     []Record `json:"records"`
	PresentDays int      `json:"present_days"`
	AbsentDays  int      `json:"absent_days"`
	LeaveDays   int      `json:"leave_days"`
}

type CheckRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Note      string   `json:"note,omitempty"`
}

func (r *CheckRequest) Validate() error {
	if (r.Latitude == nil) != (r.Longitude == nil) {
		return ErrInvalidCoordinates
	}
	if r.Latitude != nil {
		if *r.Latitude < -90 || *r.Latitude > 90 || *r.Longitude < -180 || *r.Longitude > 180 {
			return ErrInvalidCoordinates
		}
	}
	return nil
}

// ParseMonth checks a YYYY-MM month. An empty month means the current one.
func ParseMonth(month string, now time.Time) (string, error) {
	if month == "" {
		return now.Format(MonthLayout), nil
	}
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return month, nil
}
