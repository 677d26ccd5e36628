package analyzer

import (
	"time"

	"github.com/worklens/worklens/internal/period"
	"github.com/worklens/worklens/internal/session"
)

// Score defaults. The ideal break band brackets the short deliberate pause:
// shorter reads as a context switch, longer as drifting off.
const (
	DefaultScoreWindowDays = 30

	idealBreakMinMinutes = 5.0
	idealBreakMaxMinutes = 30.0
)

// Factor point ceilings. They sum to 100 so the composite needs no final
// normalization.
const (
	goalCompletionMax = 40.0
	consistencyMax    = 25.0
	focusTimeMax      = 20.0
	breakBalanceMax   = 15.0
)

// ComputeScore rates the last windowDays calendar days on four factors:
//
//   - goal completion: mean of each worked day's earned/dailyGoal, each day
//     capped at 100%
//   - consistency: fraction of the window's days with at least one session
//   - focus time: mean across worked days of the longest single session's
//     share of that day's hours
//   - break balance: fraction of intra-day breaks inside the ideal band; a
//     window with no breaks at all scores full points
//
// The boolean is false when the window holds no sessions.
func ComputeScore(sessions []session.WorkSession, now time.Time, windowDays int, dailyGoal, breakCeilingMinutes float64) (ProductivityScore, bool) {
	if windowDays < 1 {
		windowDays = DefaultScoreWindowDays
	}

	// Midnight UTC of now's calendar day, matching how session dates parse.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	w := period.Window{Start: today.AddDate(0, 0, -(windowDays - 1)), End: today}
	recent := period.Filter(sessions, w)
	if len(recent) == 0 {
		return ProductivityScore{}, false
	}

	rollups := PerDay(recent, breakCeilingMinutes)

	score := ProductivityScore{
		GoalCompletion: factor(goalFraction(rollups, dailyGoal), goalCompletionMax),
		Consistency:    factor(float64(len(rollups))/float64(windowDays), consistencyMax),
		FocusTime:      factor(focusFraction(recent, rollups), focusTimeMax),
		BreakBalance:   factor(breakFraction(recent, breakCeilingMinutes), breakBalanceMax),
	}
	score.Score = score.GoalCompletion.Value +
		score.Consistency.Value +
		score.FocusTime.Value +
		score.BreakBalance.Value
	return score, true
}

// factor scales a [0,1] fraction onto a point ceiling.
func factor(fraction, max float64) ScoreFactor {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return ScoreFactor{Value: fraction * max, Max: max, Percentage: fraction * 100}
}

func goalFraction(rollups map[string]DailyRollup, dailyGoal float64) float64 {
	if dailyGoal <= 0 || len(rollups) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rollups {
		ratio := r.Earned / dailyGoal
		if ratio > 1 {
			ratio = 1
		}
		sum += ratio
	}
	return sum / float64(len(rollups))
}

func focusFraction(sessions []session.WorkSession, rollups map[string]DailyRollup) float64 {
	longest := make(map[string]float64)
	for _, s := range sessions {
		if s.DurationHours > longest[s.Date] {
			longest[s.Date] = s.DurationHours
		}
	}

	var sum float64
	counted := 0
	for date, r := range rollups {
		if r.Hours <= 0 {
			continue
		}
		sum += longest[date] / r.Hours
		counted++
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

func breakFraction(sessions []session.WorkSession, ceilingMinutes float64) float64 {
	byDate := make(map[string][]session.WorkSession)
	for _, s := range sessions {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	total, ideal := 0, 0
	for _, day := range byDate {
		for _, gap := range dayBreakGaps(day, ceilingMinutes) {
			total++
			if gap >= idealBreakMinMinutes && gap <= idealBreakMaxMinutes {
				ideal++
			}
		}
	}
	if total == 0 {
		return 1
	}
	return float64(ideal) / float64(total)
}
