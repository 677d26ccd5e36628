package analyzer

import (
	"math"
	"time"

	"github.com/worklens/worklens/internal/period"
	"github.com/worklens/worklens/internal/session"
)

// Anomaly defaults.
const (
	DefaultAnomalyBaselineDays     = 30
	DefaultAnomalyMinBaselineDays  = 5
	DefaultAnomalyThresholdPercent = 40.0
)

// ComputeTodayAnomaly compares today's total earned against the mean of the
// worked days in the trailing baseline window (yesterday back baselineDays,
// today excluded). The boolean is false when fewer than minBaselineDays
// worked days exist in that window, or when today's deviation stays within
// thresholdPercent of the baseline mean.
func ComputeTodayAnomaly(sessions []session.WorkSession, now time.Time, baselineDays, minBaselineDays int, thresholdPercent float64) (TodayAnomaly, bool) {
	if baselineDays < 1 {
		baselineDays = DefaultAnomalyBaselineDays
	}

	// Midnight UTC of now's calendar day, matching how session dates parse.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	todayKey := today.Format(session.DateLayout)

	var todayTotal float64
	for _, s := range sessions {
		if s.Date == todayKey {
			todayTotal += s.Earned
		}
	}

	baseline := period.Window{Start: today.AddDate(0, 0, -baselineDays), End: today.AddDate(0, 0, -1)}
	rollups := PerDay(period.Filter(sessions, baseline), DefaultBreakCeilingMinutes)
	if len(rollups) < minBaselineDays {
		return TodayAnomaly{}, false
	}

	var sum float64
	for _, r := range rollups {
		sum += r.Earned
	}
	mean := sum / float64(len(rollups))
	if mean == 0 {
		return TodayAnomaly{}, false
	}

	deviation := (todayTotal - mean) / mean * 100
	if math.Abs(deviation) <= thresholdPercent {
		return TodayAnomaly{}, false
	}

	direction := AnomalyAbove
	if deviation < 0 {
		direction = AnomalyBelow
	}
	return TodayAnomaly{
		Direction: direction,
		Percent:   math.Abs(deviation),
		Total:     todayTotal,
	}, true
}
