package analyzer

import (
	"time"

	"github.com/worklens/worklens/internal/session"
)

// InsightParams carries the tunables of the five insight analyzers. All
// values come from configuration, never from ambient state.
type InsightParams struct {
	Now time.Time

	PeakWindowHours int

	TrendWindowDays       int
	TrendMinSessions      int
	TrendThresholdPercent float64

	AnomalyBaselineDays     int
	AnomalyMinBaselineDays  int
	AnomalyThresholdPercent float64
}

// DefaultInsightParams returns the documented defaults relative to now.
func DefaultInsightParams(now time.Time) InsightParams {
	return InsightParams{
		Now:                     now,
		PeakWindowHours:         DefaultPeakWindowHours,
		TrendWindowDays:         DefaultTrendWindowDays,
		TrendMinSessions:        DefaultTrendMinSessions,
		TrendThresholdPercent:   DefaultTrendThresholdPercent,
		AnomalyBaselineDays:     DefaultAnomalyBaselineDays,
		AnomalyMinBaselineDays:  DefaultAnomalyMinBaselineDays,
		AnomalyThresholdPercent: DefaultAnomalyThresholdPercent,
	}
}

// ComputeInsights runs every insight analyzer over the same snapshot. Fields
// of analyzers whose preconditions were unmet stay nil.
func ComputeInsights(sessions []session.WorkSession, p InsightParams) InsightSet {
	var set InsightSet
	if v, ok := ComputeBestWeekday(sessions); ok {
		set.BestWeekday = &v
	}
	if v, ok := ComputePeakWindow(sessions, p.PeakWindowHours); ok {
		set.PeakWindow = &v
	}
	trend := ComputeEarningsTrend(sessions, p.Now, p.TrendWindowDays, p.TrendMinSessions, p.TrendThresholdPercent)
	set.EarningsTrend = &trend
	if v, ok := ComputeLongestSession(sessions); ok {
		set.LongestSession = &v
	}
	if v, ok := ComputeTodayAnomaly(sessions, p.Now, p.AnomalyBaselineDays, p.AnomalyMinBaselineDays, p.AnomalyThresholdPercent); ok {
		set.TodayAnomaly = &v
	}
	return set
}
