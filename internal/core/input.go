package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/inovacc/projtrack/internal/model"
)

// MaxDays caps an explicit day count.
const MaxDays = math.MaxInt32

// ProjectInput carries form values as the user typed them.
type ProjectInput struct {
	Name        string
	StartDate   string
	EndDate     string
	Days        string
	Status      string
	Payment     string
	PaymentDate string
}

// FromProject fills an input from an existing record, the inverse of Build.
func FromProject(p model.Project) ProjectInput {
	in := ProjectInput{
		Name:        p.Name,
		StartDate:   model.DateString(p.StartDate, ""),
		EndDate:     model.DateString(p.EndDate, ""),
		Status:      string(p.Status),
		PaymentDate: model.DateString(p.PaymentDate, ""),
	}

	if p.Days != 0 {
		in.Days = strconv.Itoa(p.Days)
	}

	if p.Payment != 0 {
		in.Payment = strconv.FormatFloat(p.Payment, 'f', -1, 64)
	}

	return in
}

// ParseNumber parses a decimal number. Blank input, garbage and non-finite
// values fail with ErrParseNumber; the caller decides whether to default.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrParseNumber)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrParseNumber, s)
	}

	return v, nil
}

// numberOrZero applies the form policy: anything unparsable counts as zero.
func numberOrZero(s string) float64 {
	v, err := ParseNumber(s)
	if err != nil {
		return 0
	}

	return v
}

// ParseDate validates a YYYY-MM-DD date. Blank input yields nil.
func ParseDate(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return &s, nil
}

// dateOrNil treats a malformed date like an empty date input.
func dateOrNil(s string) *string {
	d, err := ParseDate(s)
	if err != nil {
		return nil
	}

	return d
}

// Build validates the input and produces the record to store. The id is
// left zero for the store to assign.
func (in ProjectInput) Build() (model.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Project{}, ErrEmptyName
	}

	p := model.Project{
		Name:        name,
		StartDate:   dateOrNil(in.StartDate),
		EndDate:     dateOrNil(in.EndDate),
		Status:      model.ParseStatus(strings.TrimSpace(in.Status)),
		Payment:     math.Max(numberOrZero(in.Payment), 0),
		PaymentDate: dateOrNil(in.PaymentDate),
	}

	// Fractional day counts truncate toward zero; the result is clamped to
	// [0, MaxDays] before the int conversion.
	p.Days = int(min(max(numberOrZero(in.Days), 0), MaxDays))

	if p.Days == 0 && p.StartDate != nil && p.EndDate != nil {
		days, err := model.SpanDays(*p.StartDate, *p.EndDate)
		if err == nil {
			p.Days = days
		}
	}

	return p, nil
}
