// Package analyzer turns a normalized work-session collection into period
// aggregates, narrative insights, and a weighted productivity score.
//
// Every function here is pure: it reads an immutable session snapshot plus
// explicit parameters and returns new values. Analyzers whose preconditions
// are unmet return an explicit not-available result (a false second return),
// never a misleading zero.
package analyzer

// DailyRollup summarizes all sessions of one calendar day.
type DailyRollup struct {
	// Date is the calendar day in YYYY-MM-DD form.
	Date string `json:"date"`

	// Earned is the day's total earnings.
	Earned float64 `json:"earned"`

	// Hours is the day's total worked hours.
	Hours float64 `json:"hours"`

	// AverageRate is Earned/Hours, 0 when no hours were logged.
	AverageRate float64 `json:"average_rate"`

	// BreakMinutes is the summed idle time between consecutive sessions.
	BreakMinutes float64 `json:"break_minutes"`

	// SessionCount is the number of sessions on the day.
	SessionCount int `json:"session_count"`
}

// PeriodAggregate reduces all daily rollups of a window.
type PeriodAggregate struct {
	TotalHours  float64 `json:"total_hours"`
	TotalEarned float64 `json:"total_earned"`

	// AverageRate is TotalEarned/TotalHours, 0 when no hours were logged.
	AverageRate float64 `json:"average_rate"`

	// DaysWorked is the count of distinct dates with at least one session.
	DaysWorked int `json:"days_worked"`

	// DaysOff is the count of calendar days in the window without a session.
	// Only meaningful when the aggregate was computed against a bounded
	// window; 0 otherwise.
	DaysOff int `json:"days_off"`

	TotalBreakHours float64 `json:"total_break_hours"`

	SessionCount int `json:"session_count"`
}

// CategoryRollup summarizes the sessions of one category within a window.
type CategoryRollup struct {
	Category    string  `json:"category"`
	Hours       float64 `json:"hours"`
	Earned      float64 `json:"earned"`
	AverageRate float64 `json:"average_rate"`
	Sessions    int     `json:"sessions"`
}

// BestWeekday names the weekday with the highest mean earnings per worked
// day.
type BestWeekday struct {
	// Day is the winning weekday.
	Day string `json:"day"`

	// AvgEarned is that weekday's mean earnings across its worked days.
	AvgEarned float64 `json:"avg_earned"`
}

// PeakWindow is the contiguous span of clock hours with the highest mean
// hourly rate.
type PeakWindow struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`

	// Rate is the window's mean hourly rate.
	Rate float64 `json:"rate"`
}

// TrendDirection classifies an earnings trend.
type TrendDirection string

// Trend directions. TrendInsufficient is returned when too little history
// exists to compare two periods.
const (
	TrendRising       TrendDirection = "rising"
	TrendFalling      TrendDirection = "falling"
	TrendFlat         TrendDirection = "flat"
	TrendInsufficient TrendDirection = "insufficient-data"
)

// EarningsTrend compares recent earnings against the preceding period of
// equal length.
type EarningsTrend struct {
	Direction TrendDirection `json:"direction"`

	// ChangePercent is the relative change from the prior period. Zero when
	// Direction is TrendInsufficient.
	ChangePercent float64 `json:"change_percent"`

	// WindowDays is the length of each compared period.
	WindowDays int `json:"window_days"`
}

// LongestSession describes the single longest logged session.
type LongestSession struct {
	Date          string  `json:"date"`
	DurationHours float64 `json:"duration_hours"`
	Earned        float64 `json:"earned"`
}

// AnomalyDirection says which side of the baseline today fell on.
type AnomalyDirection string

// Anomaly directions.
const (
	AnomalyAbove AnomalyDirection = "above"
	AnomalyBelow AnomalyDirection = "below"
)

// TodayAnomaly flags a significant deviation of today's earnings from the
// trailing baseline.
type TodayAnomaly struct {
	Direction AnomalyDirection `json:"direction"`

	// Percent is the absolute deviation from the baseline mean, in percent.
	Percent float64 `json:"percent"`

	// Total is today's earned total.
	Total float64 `json:"total"`
}

// ScoreFactor is one component of the productivity score.
type ScoreFactor struct {
	// Value is the points achieved, in [0, Max].
	Value float64 `json:"value"`

	// Max is the factor's point ceiling.
	Max float64 `json:"max"`

	// Percentage is Value/Max in percent.
	Percentage float64 `json:"percentage"`
}

// ProductivityScore is the 0-100 composite of four pre-weighted factors.
type ProductivityScore struct {
	// Score is the sum of the four factor values.
	Score float64 `json:"score"`

	// GoalCompletion measures daily goal attainment (max 40).
	GoalCompletion ScoreFactor `json:"goal_completion"`

	// Consistency measures how many of the recent days were worked (max 25).
	Consistency ScoreFactor `json:"consistency"`

	// FocusTime measures how much of each day is one long session (max 20).
	FocusTime ScoreFactor `json:"focus_time"`

	// BreakBalance measures how many breaks fall in the ideal band (max 15).
	BreakBalance ScoreFactor `json:"break_balance"`
}

// InsightSet bundles the five insight analyzers' results. A nil field means
// the analyzer had too little data and the caller must render an explicit
// "not enough data" state instead of a zero.
type InsightSet struct {
	BestWeekday    *BestWeekday    `json:"best_weekday,omitempty"`
	PeakWindow     *PeakWindow     `json:"peak_window,omitempty"`
	EarningsTrend  *EarningsTrend  `json:"earnings_trend,omitempty"`
	LongestSession *LongestSession `json:"longest_session,omitempty"`
	TodayAnomaly   *TodayAnomaly   `json:"today_anomaly,omitempty"`
}
