package analyzer

import (
	"time"

	"github.com/worklens/worklens/internal/session"
)

// ComputeBestWeekday finds the weekday with the highest mean earnings per
// worked day. Exact ties go to the lowest Monday-first index. The boolean is
// false when no session carries a valid date.
func ComputeBestWeekday(sessions []session.WorkSession) (BestWeekday, bool) {
	type dayTotal struct {
		weekday time.Weekday
		earned  float64
	}
	totals := make(map[string]*dayTotal)
	for _, s := range sessions {
		day, ok := s.Day()
		if !ok {
			continue
		}
		t, seen := totals[s.Date]
		if !seen {
			t = &dayTotal{weekday: day.Weekday()}
			totals[s.Date] = t
		}
		t.earned += s.Earned
	}
	if len(totals) == 0 {
		return BestWeekday{}, false
	}

	var sums, counts [7]float64
	for _, t := range totals {
		idx := mondayFirst(t.weekday)
		sums[idx] += t.earned
		counts[idx]++
	}

	best := -1
	var bestMean float64
	for i := 0; i < 7; i++ {
		if counts[i] == 0 {
			continue
		}
		mean := sums[i] / counts[i]
		if best == -1 || mean > bestMean {
			best = i
			bestMean = mean
		}
	}

	return BestWeekday{
		Day:       mondayFirstName(best),
		AvgEarned: bestMean,
	}, true
}

// mondayFirst maps time.Weekday (Sunday-first) to a Monday-first index.
func mondayFirst(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func mondayFirstName(idx int) string {
	return time.Weekday((idx + 1) % 7).String()
}
