package analyzer

import "github.com/worklens/worklens/internal/session"

// ComputeLongestSession finds the single longest session. Equal durations go
// to the most recent date. The boolean is false on empty input.
func ComputeLongestSession(sessions []session.WorkSession) (LongestSession, bool) {
	found := false
	var best session.WorkSession
	for _, s := range sessions {
		if !found ||
			s.DurationHours > best.DurationHours ||
			(s.DurationHours == best.DurationHours && s.Date > best.Date) {
			best = s
			found = true
		}
	}
	if !found {
		return LongestSession{}, false
	}
	return LongestSession{
		Date:          best.Date,
		DurationHours: best.DurationHours,
		Earned:        best.Earned,
	}, true
}
