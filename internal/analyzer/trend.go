package analyzer

import (
	"time"

	"github.com/worklens/worklens/internal/period"
	"github.com/worklens/worklens/internal/session"
)

// Trend defaults.
const (
	DefaultTrendWindowDays       = 30
	DefaultTrendMinSessions      = 10
	DefaultTrendThresholdPercent = 5.0
)

// ComputeEarningsTrend compares the most recent windowDays of earnings
// against the preceding window of equal length. When less than 2*windowDays
// of history exists, both windows shrink proportionally. The result carries
// TrendInsufficient when fewer than minSessions sessions fall in the two
// windows combined, or when the prior window earned nothing (no baseline to
// express a relative change against).
func ComputeEarningsTrend(sessions []session.WorkSession, now time.Time, windowDays, minSessions int, thresholdPercent float64) EarningsTrend {
	if windowDays < 1 {
		windowDays = DefaultTrendWindowDays
	}

	span, ok := period.SpanOf(sessions, now)
	if !ok {
		return EarningsTrend{Direction: TrendInsufficient}
	}
	n := windowDays
	if half := span.Days() / 2; half < n {
		n = half
	}
	if n < 1 {
		return EarningsTrend{Direction: TrendInsufficient}
	}

	// Midnight UTC of now's calendar day, matching how session dates parse.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	recent := period.Window{Start: today.AddDate(0, 0, -(n - 1)), End: today}
	prior := recent.Previous()

	recentSessions := period.Filter(sessions, recent)
	priorSessions := period.Filter(sessions, prior)
	if len(recentSessions)+len(priorSessions) < minSessions {
		return EarningsTrend{Direction: TrendInsufficient, WindowDays: n}
	}

	var recentTotal, priorTotal float64
	for _, s := range recentSessions {
		recentTotal += s.Earned
	}
	for _, s := range priorSessions {
		priorTotal += s.Earned
	}
	if priorTotal == 0 {
		return EarningsTrend{Direction: TrendInsufficient, WindowDays: n}
	}

	change := (recentTotal - priorTotal) / priorTotal * 100
	direction := TrendFlat
	switch {
	case change > thresholdPercent:
		direction = TrendRising
	case change < -thresholdPercent:
		direction = TrendFalling
	}
	return EarningsTrend{Direction: direction, ChangePercent: change, WindowDays: n}
}
