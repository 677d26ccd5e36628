// Package session defines the WorkSession value type and the normalization
// boundary that converts loosely-shaped raw records into typed sessions.
package session

import "time"

// DateLayout is the calendar-day format used throughout worklens.
const DateLayout = "2006-01-02"

// ClockLayout is the clock-time format for session start/end times.
const ClockLayout = "15:04"

// WorkSession is one logged work interval. Values are immutable once
// normalized; every analyzer receives sessions by value and returns new data.
type WorkSession struct {
	// ID is an opaque stable identifier.
	ID string `json:"id"`

	// Date is the calendar day in YYYY-MM-DD form. Always valid after
	// normalization.
	Date string `json:"date"`

	// Start and End are clock times in HH:MM form. End is empty while a
	// session is still in progress.
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`

	// DurationHours is the session length in hours. Derived from Start/End
	// when the raw record carries no explicit duration; never negative.
	DurationHours float64 `json:"duration_hours"`

	// Category is a category id or name. Resolution to a display name is
	// owned by the caller, not by this package.
	Category string `json:"category,omitempty"`

	// Earned is the non-negative amount earned during the session.
	Earned float64 `json:"earned"`
}

// Day returns the session's calendar day as a time.Time at midnight UTC.
// The boolean is false if Date does not parse, which cannot happen for a
// normalized session.
func (s WorkSession) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Weekday returns the session's day of week. Normalized sessions always have
// a parseable date; the zero Weekday (Sunday) is returned otherwise.
func (s WorkSession) Weekday() time.Weekday {
	t, ok := s.Day()
	if !ok {
		return time.Sunday
	}
	return t.Weekday()
}

// StartMinutes returns the start clock time as minutes since midnight.
func (s WorkSession) StartMinutes() (int, bool) {
	return clockToMinutes(s.Start)
}

// EndMinutes returns the end clock time as minutes since midnight.
func (s WorkSession) EndMinutes() (int, bool) {
	return clockToMinutes(s.End)
}

// StartHour returns the hour-of-day the session begins in (0-23).
func (s WorkSession) StartHour() (int, bool) {
	min, ok := clockToMinutes(s.Start)
	if !ok {
		return 0, false
	}
	return min / 60, true
}
