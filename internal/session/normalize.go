package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Normalize converts raw, loosely-shaped records into WorkSessions.
//
// An element is dropped when it is not an object at all, or when it has no
// parseable, calendar-valid date. Every other defect is repaired rather than
// rejected: earned falls back to 0 when it is not numeric, the category may
// arrive under "category" or "categoryId", and a missing duration is derived
// from the start/end clock times. A record whose end precedes its start on
// the same day yields a zero duration, never a negative one. One bad element
// never discards its neighbors.
func Normalize(raw []any) []WorkSession {
	sessions := make([]WorkSession, 0, len(raw))
	for _, item := range raw {
		rec, ok := item.(map[string]any)
		if !ok || rec == nil {
			continue
		}
		s, ok := normalizeOne(rec)
		if !ok {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions
}

func normalizeOne(rec map[string]any) (WorkSession, bool) {
	date, ok := normalizeDate(stringField(rec, "date"))
	if !ok {
		return WorkSession{}, false
	}

	s := WorkSession{
		ID:       stringField(rec, "id"),
		Date:     date,
		Start:    normalizeClock(stringField(rec, "start")),
		End:      normalizeClock(stringField(rec, "end")),
		Category: firstStringField(rec, "category", "categoryId", "category_id"),
		Earned:   numericField(rec, "earned"),
	}
	if s.Earned < 0 {
		s.Earned = 0
	}

	if d, present := durationField(rec); present {
		s.DurationHours = d
	} else {
		s.DurationHours = deriveDuration(s.Start, s.End)
	}
	if s.DurationHours < 0 {
		s.DurationHours = 0
	}

	return s, true
}

// deriveDuration computes hours between two clock times. Missing times or an
// end before the start yield 0.
func deriveDuration(start, end string) float64 {
	startMin, ok := clockToMinutes(start)
	if !ok {
		return 0
	}
	endMin, ok := clockToMinutes(end)
	if !ok {
		return 0
	}
	if endMin < startMin {
		return 0
	}
	return float64(endMin-startMin) / 60.0
}

// clockToMinutes parses an HH:MM string into minutes since midnight.
func clockToMinutes(clock string) (int, bool) {
	if clock == "" {
		return 0, false
	}
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// minutesToClock formats minutes since midnight as HH:MM.
func minutesToClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// normalizeDate validates a YYYY-MM-DD date, returning it re-formatted so
// that "2025-1-3" style inputs come out zero-padded.
func normalizeDate(date string) (string, bool) {
	if date == "" {
		return "", false
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		// Tolerate unpadded month/day.
		t, err = time.Parse("2006-1-2", date)
		if err != nil {
			return "", false
		}
	}
	return t.Format(DateLayout), true
}

// normalizeClock validates an HH:MM clock string, returning "" for anything
// unparseable so downstream code only ever sees valid or absent times.
func normalizeClock(clock string) string {
	min, ok := clockToMinutes(clock)
	if !ok {
		return ""
	}
	return minutesToClock(min)
}

func stringField(rec map[string]any, key string) string {
	v, ok := rec[key]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return ""
}

func firstStringField(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringField(rec, k); s != "" {
			return s
		}
	}
	return ""
}

// numericField coerces a field to float64, accepting numbers and numeric
// strings. Anything else is 0.
func numericField(rec map[string]any, key string) float64 {
	v, ok := rec[key]
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// durationField reports whether the record carries an explicit duration and
// returns it in hours. Accepts "duration", "durationHours" and
// "duration_hours" spellings.
func durationField(rec map[string]any) (float64, bool) {
	for _, key := range []string{"durationHours", "duration_hours", "duration"} {
		if _, ok := rec[key]; ok {
			return numericField(rec, key), true
		}
	}
	return 0, false
}
