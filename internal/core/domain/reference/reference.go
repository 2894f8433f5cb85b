package reference

import (
	"errors"
	"time"
)

var ErrInvalidYear = errors.New("year must be between 1970 and 9999")

type HolidayType string

const (
	HolidayPublic  HolidayType = "public"
	HolidayCompany HolidayType = "company"
)

type Holiday struct {
	Date     string      `json:"date"`
	Name     string      `json:"name"`
	Type     HolidayType `json:"type"`
	Optional bool        `json:"optional"`
}

// ParseYear validates a calendar year. Zero means the current year.
func ParseYear(year int, now time.Time) (int, error) {
	if year == 0 {
		return now.Year(), nil
	}
	if year < 1970 || year > 9999 {
		return 0, ErrInvalidYear
	}
	return year, nil
}
