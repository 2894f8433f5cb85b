package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cache sections. Every employee key has the form
// <employeeID>:<section>_<name>[:<arg>...] so a whole section can be dropped
// with one prefix invalidation.
const (
	SectionAttendance = "attendance"
	SectionLeave      = "leave"
	SectionTimeslip   = "timeslip"
	SectionMessage    = "message"
	SectionAll        = "all"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownSection = errors.New("unknown cache section")
)

// TTLPolicy holds the freshness windows for the three classes of data.
type TTLPolicy struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{Short: 2 * time.Minute, Medium: 5 * time.Minute, Long: 15 * time.Minute}
}

func employeeKey(employeeID uuid.UUID, section, name string, args ...string) string {
	var b strings.Builder
	b.WriteString(employeeID.String())
	b.WriteByte(':')
	b.WriteString(section)
	b.WriteByte('_')
	b.WriteString(name)
	for _, a := range args {
		b.WriteByte(':')
		b.WriteString(a)
	}
	return b.String()
}

func sectionPrefix(employeeID uuid.UUID, section string) string {
	return employeeID.String() + ":" + section + "_"
}

func employeePrefix(employeeID uuid.UUID) string {
	return employeeID.String() + ":"
}
