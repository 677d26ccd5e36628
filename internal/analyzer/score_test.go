package analyzer

import (
	"testing"
	"time"

	"github.com/worklens/worklens/internal/session"
)

var scoreNow = time.Date(2026, time.March, 11, 20, 0, 0, 0, time.UTC)

func TestComputeScore_PerfectMonth(t *testing.T) {
	// Exactly the daily goal every day for 30/30 days, one session per day,
	// no breaks.
	var sessions []session.WorkSession
	for i := 0; i < 30; i++ {
		d := scoreNow.AddDate(0, 0, -i)
		sessions = append(sessions, session.WorkSession{
			Date:          d.Format(session.DateLayout),
			Start:         "09:00",
			End:           "17:00",
			DurationHours: 8,
			Earned:        400,
		})
	}

	got, ok := ComputeScore(sessions, scoreNow, DefaultScoreWindowDays, 400, DefaultBreakCeilingMinutes)
	if !ok {
		t.Fatal("not ok for a full window")
	}
	approx(t, got.GoalCompletion.Value, 40, "GoalCompletion")
	approx(t, got.Consistency.Value, 25, "Consistency")
	approx(t, got.FocusTime.Value, 20, "FocusTime (single session per day)")
	approx(t, got.BreakBalance.Value, 15, "BreakBalance (no breaks logged)")
	approx(t, got.Score, 100, "Score")
	if got.Score > 100 {
		t.Errorf("Score = %v, must never exceed 100", got.Score)
	}
}

func TestComputeScore_GoalOverachievementCapsPerDay(t *testing.T) {
	// One day at triple the goal must not offset missed days.
	sessions := []session.WorkSession{
		{Date: scoreNow.Format(session.DateLayout), DurationHours: 8, Earned: 1200},
		{Date: scoreNow.AddDate(0, 0, -1).Format(session.DateLayout), DurationHours: 2, Earned: 100},
	}

	got, ok := ComputeScore(sessions, scoreNow, DefaultScoreWindowDays, 400, DefaultBreakCeilingMinutes)
	if !ok {
		t.Fatal("not ok")
	}
	// (min(3,1) + 0.25) / 2 days = 0.625
	approx(t, got.GoalCompletion.Value, 0.625*40, "GoalCompletion")
	approx(t, got.GoalCompletion.Percentage, 62.5, "GoalCompletion percentage")
}

func TestComputeScore_Consistency(t *testing.T) {
	// 15 worked days out of 30.
	var sessions []session.WorkSession
	for i := 0; i < 30; i += 2 {
		d := scoreNow.AddDate(0, 0, -i)
		sessions = append(sessions, session.WorkSession{
			Date: d.Format(session.DateLayout), DurationHours: 4, Earned: 200,
		})
	}

	got, ok := ComputeScore(sessions, scoreNow, DefaultScoreWindowDays, 400, DefaultBreakCeilingMinutes)
	if !ok {
		t.Fatal("not ok")
	}
	approx(t, got.Consistency.Value, 12.5, "Consistency (15/30 days)")
}

func TestComputeScore_FocusAndBreakBand(t *testing.T) {
	// One day, two sessions: longest is 3 of 4 hours, and the single
	// 15-minute break sits in the ideal band.
	date := scoreNow.Format(session.DateLayout)
	sessions := []session.WorkSession{
		{Date: date, Start: "09:00", End: "12:00", DurationHours: 3, Earned: 300},
		{Date: date, Start: "12:15", End: "13:15", DurationHours: 1, Earned: 100},
	}

	got, ok := ComputeScore(sessions, scoreNow, DefaultScoreWindowDays, 400, DefaultBreakCeilingMinutes)
	if !ok {
		t.Fatal("not ok")
	}
	approx(t, got.FocusTime.Value, 0.75*20, "FocusTime")
	approx(t, got.BreakBalance.Value, 15, "BreakBalance (1/1 ideal)")
}

func TestComputeScore_BreaksOutsideBand(t *testing.T) {
	// A 2-minute micro-gap and a 90-minute wander, neither ideal.
	date := scoreNow.Format(session.DateLayout)
	sessions := []session.WorkSession{
		{Date: date, Start: "09:00", End: "10:00", DurationHours: 1, Earned: 100},
		{Date: date, Start: "10:02", End: "11:00", DurationHours: 0.97, Earned: 100},
		{Date: date, Start: "12:30", End: "13:30", DurationHours: 1, Earned: 100},
	}

	got, ok := ComputeScore(sessions, scoreNow, DefaultScoreWindowDays, 400, DefaultBreakCeilingMinutes)
	if !ok {
		t.Fatal("not ok")
	}
	approx(t, got.BreakBalance.Value, 0, "BreakBalance (0/2 ideal)")
}

func TestComputeScore_NoSessionsInWindow(t *testing.T) {
	old := []session.WorkSession{
		{Date: "2025-01-15", DurationHours: 8, Earned: 400},
	}
	if _, ok := ComputeScore(old, scoreNow, DefaultScoreWindowDays, 400, DefaultBreakCeilingMinutes); ok {
		t.Error("a window with no sessions should return the sentinel")
	}
	if _, ok := ComputeScore(nil, scoreNow, DefaultScoreWindowDays, 400, DefaultBreakCeilingMinutes); ok {
		t.Error("empty input should return the sentinel")
	}
}

func TestComputeInsights_BundlesSentinels(t *testing.T) {
	set := ComputeInsights(nil, DefaultInsightParams(scoreNow))
	if set.BestWeekday != nil || set.PeakWindow != nil || set.LongestSession != nil || set.TodayAnomaly != nil {
		t.Errorf("empty input should leave insight fields nil, got %+v", set)
	}
	if set.EarningsTrend == nil || set.EarningsTrend.Direction != TrendInsufficient {
		t.Errorf("trend should report insufficient-data, got %+v", set.EarningsTrend)
	}
}
