package models

import (
	"strings"
	"time"
)

// Period selects a date filter for expense queries, relative to "now".
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodAll     Period = "all"
)

// ParsePeriod maps user input to a Period. Unrecognized values fall back to
// PeriodAll (no filter), matching the permissive query behavior.
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodDaily:
		return PeriodDaily
	case PeriodWeekly:
		return PeriodWeekly
	case PeriodMonthly:
		return PeriodMonthly
	case PeriodYearly:
		return PeriodYearly
	default:
		return PeriodAll
	}
}

// Bounds returns the inclusive [start, end] date range for the period,
// in storage format. The third result is false when no filter applies.
// Ranges are computed here and passed to queries as parameters; periods are
// never spliced into SQL.
func (p Period) Bounds(now time.Time) (start, end string, filtered bool) {
	today := now.Format(DateFormat)
	switch p {
	case PeriodDaily:
		return today, today, true
	case PeriodWeekly:
		// Last 7 days, inclusive of today.
		return now.AddDate(0, 0, -6).Format(DateFormat), today, true
	case PeriodMonthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return first.Format(DateFormat), last.Format(DateFormat), true
	case PeriodYearly:
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		last := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
		return first.Format(DateFormat), last.Format(DateFormat), true
	default:
		return "", "", false
	}
}
