package period

import "github.com/worklens/worklens/internal/session"

// Filter returns the sessions whose date falls inside the window, compared at
// day granularity. The input slice is never mutated.
func Filter(sessions []session.WorkSession, w Window) []session.WorkSession {
	var out []session.WorkSession
	for _, s := range sessions {
		day, ok := s.Day()
		if !ok {
			continue
		}
		if w.Contains(day) {
			out = append(out, s)
		}
	}
	return out
}

// FilterWithPrevious returns the sessions in the window and, for comparison
// mode, the sessions in the mirror window of identical length immediately
// preceding it.
func FilterWithPrevious(sessions []session.WorkSession, w Window) (current, previous []session.WorkSession) {
	return Filter(sessions, w), Filter(sessions, w.Previous())
}
