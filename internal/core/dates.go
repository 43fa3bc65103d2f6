package core

import (
	"strings"
	"time"
)

// InvalidDateLabel is the label produced for dates that could not be parsed.
const InvalidDateLabel = "Invalid Date"

// Label layouts. Go month names are always English, so the labels do not
// depend on the host locale.
const (
	monthLayout = "Jan 2006"
	weekLayout  = "Jan 2"
	dayLayout   = "Jan 2, 2006"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses s with the first matching layout. The calendar date is kept
// as written; no time zone conversion happens. Unparseable input yields the
// zero Date, which labels as InvalidDateLabel.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t)
		}
	}
	return Date{}
}

// MonthLabel formats d as "Jan 2024".
func MonthLabel(d Date) string {
	if !d.IsValid() {
		return InvalidDateLabel
	}
	return d.Format(monthLayout)
}

// WeekStart returns the Sunday starting the week that contains d.
func WeekStart(d Date) Date {
	if !d.IsValid() {
		return d
	}
	return DateOf(d.AddDate(0, 0, -int(d.Weekday())))
}

// WeekLabel formats the week start of d as "Mar 3". The label carries no
// year, so the same week start in different years shares a label.
func WeekLabel(d Date) string {
	if !d.IsValid() {
		return InvalidDateLabel
	}
	return WeekStart(d).Format(weekLayout)
}

// DayLabel formats d as "Mar 3, 2024".
func DayLabel(d Date) string {
	if !d.IsValid() {
		return InvalidDateLabel
	}
	return d.Format(dayLayout)
}

// FormatDateRange renders "Jan 5, 2024 - Mar 3, 2024".
func FormatDateRange(start, end Date) string {
	return DayLabel(start) + " - " + DayLabel(end)
}
