package analyzer

import (
	"sort"

	"github.com/worklens/worklens/internal/period"
	"github.com/worklens/worklens/internal/session"
)

// DefaultBreakCeilingMinutes is the sanity ceiling for intra-day breaks.
// A gap longer than this is almost certainly a data-entry day boundary, not
// a real pause, and is excluded from break totals.
const DefaultBreakCeilingMinutes = 12 * 60

// PerDay groups sessions by calendar day and reduces each day to a rollup.
// Break time is computed from adjacent-pair gaps after sorting the day's
// sessions by start time; negative gaps (overlapping or mis-ordered
// sessions) contribute nothing, and gaps above breakCeilingMinutes are
// discarded.
func PerDay(sessions []session.WorkSession, breakCeilingMinutes float64) map[string]DailyRollup {
	byDate := make(map[string][]session.WorkSession)
	for _, s := range sessions {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	rollups := make(map[string]DailyRollup, len(byDate))
	for date, day := range byDate {
		r := DailyRollup{Date: date, SessionCount: len(day)}
		for _, s := range day {
			r.Earned += s.Earned
			r.Hours += s.DurationHours
		}
		if r.Hours > 0 {
			r.AverageRate = r.Earned / r.Hours
		}
		r.BreakMinutes = dayBreakMinutes(day, breakCeilingMinutes)
		rollups[date] = r
	}
	return rollups
}

// dayBreakMinutes sums the idle gaps between consecutive sessions of a
// single day.
func dayBreakMinutes(day []session.WorkSession, ceilingMinutes float64) float64 {
	var total float64
	for _, gap := range dayBreakGaps(day, ceilingMinutes) {
		total += gap
	}
	return total
}

// dayBreakGaps returns each valid idle gap, in minutes, between consecutive
// sessions of a single day. Sessions without both clock times are ignored;
// negative gaps and gaps above the ceiling are discarded.
func dayBreakGaps(day []session.WorkSession, ceilingMinutes float64) []float64 {
	timed := make([]session.WorkSession, 0, len(day))
	for _, s := range day {
		if _, ok := s.StartMinutes(); !ok {
			continue
		}
		if _, ok := s.EndMinutes(); !ok {
			continue
		}
		timed = append(timed, s)
	}
	sort.Slice(timed, func(i, j int) bool {
		a, _ := timed[i].StartMinutes()
		b, _ := timed[j].StartMinutes()
		return a < b
	})

	var gaps []float64
	for i := 1; i < len(timed); i++ {
		prevEnd, _ := timed[i-1].EndMinutes()
		curStart, _ := timed[i].StartMinutes()
		gap := float64(curStart - prevEnd)
		if gap <= 0 || gap > ceilingMinutes {
			continue
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

// Aggregate reduces a session subset into a period rollup. The window may be
// nil for unbounded queries, in which case DaysOff stays 0; callers that
// want a meaningful DaysOff for "all" queries pass the sessions' own span
// (period.SpanOf).
//
// All sums stay in full float precision; rounding happens only at the
// presentation layer.
func Aggregate(sessions []session.WorkSession, w *period.Window, breakCeilingMinutes float64) PeriodAggregate {
	rollups := PerDay(sessions, breakCeilingMinutes)

	agg := PeriodAggregate{SessionCount: len(sessions), DaysWorked: len(rollups)}
	var breakMinutes float64
	for _, r := range rollups {
		agg.TotalEarned += r.Earned
		agg.TotalHours += r.Hours
		breakMinutes += r.BreakMinutes
	}
	agg.TotalBreakHours = breakMinutes / 60.0
	if agg.TotalHours > 0 {
		agg.AverageRate = agg.TotalEarned / agg.TotalHours
	}

	if w != nil {
		agg.DaysOff = daysOff(rollups, *w)
	}
	return agg
}

// daysOff enumerates every calendar day in the window and counts those with
// no sessions.
func daysOff(rollups map[string]DailyRollup, w period.Window) int {
	off := 0
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		if _, worked := rollups[d.Format(session.DateLayout)]; !worked {
			off++
		}
	}
	return off
}

// ByCategory reduces sessions into per-category rollups, sorted by earnings
// descending. Category resolution (id vs name) is the caller's concern.
func ByCategory(sessions []session.WorkSession) []CategoryRollup {
	byCat := make(map[string]*CategoryRollup)
	for _, s := range sessions {
		cat := s.Category
		if cat == "" {
			cat = "uncategorized"
		}
		r, ok := byCat[cat]
		if !ok {
			r = &CategoryRollup{Category: cat}
			byCat[cat] = r
		}
		r.Hours += s.DurationHours
		r.Earned += s.Earned
		r.Sessions++
	}

	out := make([]CategoryRollup, 0, len(byCat))
	for _, r := range byCat {
		if r.Hours > 0 {
			r.AverageRate = r.Earned / r.Hours
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Earned != out[j].Earned {
			return out[i].Earned > out[j].Earned
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// SortedRollups returns the per-day rollups in date order.
func SortedRollups(rollups map[string]DailyRollup) []DailyRollup {
	out := make([]DailyRollup, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
