// Package period resolves named reporting periods to concrete calendar-day
// windows and filters sessions into them.
package period

import (
	"time"

	"github.com/worklens/worklens/internal/session"
)

// Kind names a reporting period.
type Kind string

// Named period kinds.
const (
	Today      Kind = "today"
	Week       Kind = "week"
	Month      Kind = "month"
	Year       Kind = "year"
	HalfMonth1 Kind = "halfMonth1"
	HalfMonth2 Kind = "halfMonth2"
	All        Kind = "all"
	Custom     Kind = "custom"
)

// Window is a closed, inclusive calendar-day interval. Start and End are
// midnight-normalized; time-of-day never participates in membership.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days the window covers.
func (w Window) Days() int {
	if w.End.Before(w.Start) {
		return 0
	}
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Contains reports whether the given day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Previous returns the mirror window of identical length immediately
// preceding this one: the previous calendar month for a month window, the
// previous ISO week for a week window, and so on.
func (w Window) Previous() Window {
	days := w.Days()
	end := w.Start.AddDate(0, 0, -1)
	return Window{Start: end.AddDate(0, 0, -(days - 1)), End: end}
}

// Resolve maps a period kind to a concrete window relative to now.
//
// The boolean is false for unbounded queries (All) and for Custom without
// caller-supplied bounds; callers must treat the latter as "nothing to show".
// Custom bounds arrive via custom and may be nil.
func Resolve(kind Kind, now time.Time, custom *Window) (Window, bool) {
	today := truncateDay(now)

	switch kind {
	case Today:
		return Window{Start: today, End: today}, true

	case Week:
		// ISO week, Monday start.
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return Window{Start: start, End: start.AddDate(0, 0, 6)}, true

	case Month:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start, End: start.AddDate(0, 1, -1)}, true

	case Year:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start, End: start.AddDate(1, 0, -1)}, true

	case HalfMonth1:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start, End: start.AddDate(0, 0, 14)}, true

	case HalfMonth2:
		start := time.Date(today.Year(), today.Month(), 16, 0, 0, 0, 0, today.Location())
		end := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, -1)
		return Window{Start: start, End: end}, true

	case Custom:
		if custom == nil || custom.Start.IsZero() || custom.End.IsZero() || custom.End.Before(custom.Start) {
			return Window{}, false
		}
		return Window{Start: truncateDay(custom.Start), End: truncateDay(custom.End)}, true

	case All:
		return Window{}, false
	}

	return Window{}, false
}

// SpanOf returns the window covering the sessions' own extent, from the
// earliest session date through today. Used for daysOff on unbounded "all"
// queries. The boolean is false for an empty session set.
func SpanOf(sessions []session.WorkSession, now time.Time) (Window, bool) {
	var earliest time.Time
	for _, s := range sessions {
		day, ok := s.Day()
		if !ok {
			continue
		}
		if earliest.IsZero() || day.Before(earliest) {
			earliest = day
		}
	}
	if earliest.IsZero() {
		return Window{}, false
	}
	return Window{Start: earliest, End: truncateDay(now)}, true
}

// ParseKind converts a user-supplied period name to a Kind.
func ParseKind(name string) (Kind, bool) {
	switch Kind(name) {
	case Today, Week, Month, Year, HalfMonth1, HalfMonth2, All, Custom:
		return Kind(name), true
	}
	return "", false
}

// truncateDay maps an instant to its calendar day in the instant's own
// location, normalized to midnight UTC. Session dates parse to UTC midnight,
// so normalizing window bounds the same way keeps day membership independent
// of the process timezone.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
