package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for every date field.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Status is the lifecycle state of a project.
type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusPaused    Status = "paused"
)

// Statuses lists the accepted statuses in display order.
func Statuses() []Status {
	return []Status{StatusOngoing, StatusCompleted, StatusCancelled, StatusPaused}
}

// ParseStatus converts user input into a Status. Empty or unknown input
// yields StatusOngoing.
func ParseStatus(s string) Status {
	for _, st := range Statuses() {
		if string(st) == s {
			return st
		}
	}

	return StatusOngoing
}

// Project is a single tracked project record.
type Project struct {
	// ID is derived from the creation time in unix milliseconds
	ID int64 `json:"id"`

	// Name is the display name, never empty once persisted
	Name string `json:"name"`

	// StartDate and EndDate are YYYY-MM-DD or nil
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`

	// Days is the duration in days, inclusive of both ends when derived
	Days int `json:"days"`

	// Status is one of Statuses()
	Status Status `json:"status"`

	// Payment is the amount received for the project
	Payment float64 `json:"payment"`

	// PaymentDate is YYYY-MM-DD or nil
	PaymentDate *string `json:"paymentDate"`
}

// DateString returns the dereferenced date or the placeholder when nil.
func DateString(d *string, placeholder string) string {
	if d == nil || *d == "" {
		return placeholder
	}

	return *d
}

// StringPtr returns nil for the empty string, a pointer to s otherwise.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// SpanDays returns the inclusive number of days between start and end,
// clamped to zero. Both values must be in DateLayout.
func SpanDays(start, end string) (int, error) {
	sd, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", start, err)
	}

	ed, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	// Both dates are UTC midnights, so whole days divide exactly. Sub would
	// saturate past ~292 years.
	days := int(ed.Unix()/secondsPerDay-sd.Unix()/secondsPerDay) + 1
	if days < 0 {
		return 0, nil
	}

	return days, nil
}

// Summary is the aggregate shown next to the project list.
type Summary struct {
	Count        int     `json:"count"`
	TotalPayment float64 `json:"totalPayment"`
}

// Summarize computes the summary of a collection.
func Summarize(projects []Project) Summary {
	s := Summary{Count: len(projects)}
	for _, p := range projects {
		s.TotalPayment += p.Payment
	}

	return s
}

// TotalFormatted renders the total payment with two decimals.
func (s Summary) TotalFormatted() string {
	return fmt.Sprintf("%.2f", s.TotalPayment)
}
