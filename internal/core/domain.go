package core

import (
	"errors"
	"strings"
	"time"
)

const (
	ModeCategory Mode = "category"
	ModeMonth    Mode = "month"
	ModeWeek     Mode = "week"
)

// OtherCategory is the bucket for expenses without a category.
const OtherCategory = "Other"

type (
	// Mode selects how expenses are grouped into buckets.
	Mode string

	// Date is a calendar date. The zero Date is invalid; use DateOf or
	// NewDate to build a valid one.
	Date struct {
		time.Time
		valid bool
	}

	Expense struct {
		Date        Date
		Amount      float64 // signed, refunds are negative
		Category    string  // empty means uncategorised
		Description string
	}
)

var ErrUnknownAggregationMode = errors.New("unknown aggregation mode")

// ParseMode maps a selector to a Mode. The empty string selects ModeCategory.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.TrimSpace(s)); m {
	case "":
		return ModeCategory, nil
	case ModeCategory, ModeMonth, ModeWeek:
		return m, nil
	default:
		return "", unknownMode(s)
	}
}

func (m Mode) String() string {
	return string(m)
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return DateOf(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// DateOf wraps t as a valid Date.
func DateOf(t time.Time) Date {
	return Date{Time: t, valid: true}
}

// IsValid reports whether the date was parsed successfully. 0001-01-01 is a
// valid date; only the zero Date is not.
func (d Date) IsValid() bool {
	return d.valid
}

// CategoryOr returns the expense category, or OtherCategory when it is empty.
func (e Expense) CategoryOr() string {
	if e.Category == "" {
		return OtherCategory
	}
	return e.Category
}
