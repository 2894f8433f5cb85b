package timeslip

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PeriodLayout is the format of a timeslip period.
const PeriodLayout = "2006-01"

var (
	ErrInvalidPeriod = errors.New("period must be formatted as YYYY-MM")
	ErrNoEntries     = errors.New("a timeslip needs at least one entry")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

type Entry struct {
	Date        string  `json:"date"`
	Project     string  `json:"project"`
	Task        string  `json:"task,omitempty"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description,omitempty"`
}

type Timeslip struct {
	ID          string     `json:"id"`
	Period      string     `json:"period"`
	Status      Status     `json:"status"`
	Entries     []Entry    `json:"entries"`
	TotalHours  float64    `json:"total_hours"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

type SubmitRequest struct {
	Period  string  `json:"period"`
	Entries []Entry `json:"entries"`
}

func (r *SubmitRequest) Validate() error {
	if _, err := time.Parse(PeriodLayout, r.Period); err != nil {
		return ErrInvalidPeriod
	}
	if len(r.Entries) == 0 {
		return ErrNoEntries
	}
	for i, e := range r.Entries {
		if !strings.HasPrefix(e.Date, r.Period+"-") {
			return fmt.Errorf("entry %d: date %q is outside period %s", i, e.Date, r.Period)
		}
		if _, err := time.Parse("2006-01-02", e.Date); err != nil {
			return fmt.Errorf("entry %d: invalid date %q", i, e.Date)
		}
		if strings.TrimSpace(e.Project) == "" {
			return fmt.Errorf("entry %d: project is required", i)
		}
		if e.Hours <= 0 || e.Hours > 24 {
			return fmt.Errorf("entry %d: hours must be in (0, 24]", i)
		}
	}
	return nil
}

// ParsePeriod checks a YYYY-MM period. An empty period means the current month.
func ParsePeriod(period string, now time.Time) (string, error) {
	if period == "" {
		return now.Format(PeriodLayout), nil
	}
	if _, err := time.Parse(PeriodLayout, period); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return period, nil
}
