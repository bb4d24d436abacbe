package domain

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a range's start is not strictly before its end.
var ErrInvalidRange = errors.New("domain: start must be before end")

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange builds a range and rejects empty or inverted intervals.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether two ranges share at least one instant.
// Touching ranges (a.End == b.Start) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Duration returns End - Start.
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// DayRange returns [00:00, next day 00:00) of the calendar day of date in loc.
// The end is computed with AddDate so DST days are 23 or 25 hours long.
func DayRange(date time.Time, loc *time.Location) TimeRange {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return TimeRange{Start: start, End: start.AddDate(0, 0, 1)}
}

// ParseDay parses a YYYY-MM-DD date in loc and returns its day range.
func ParseDay(value string, loc *time.Location) (TimeRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	date, err := time.ParseInLocation(DateFormat, value, loc)
	if err != nil {
		return TimeRange{}, err
	}
	return DayRange(date, loc), nil
}
