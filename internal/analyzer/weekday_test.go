package analyzer

import (
	"testing"
	"time"

	"github.com/worklens/worklens/internal/session"
)

func TestComputeBestWeekday_MondayWins(t *testing.T) {
	// Four weeks: 1000 every Monday, 500 every other day.
	var sessions []session.WorkSession
	start := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC) // a Monday
	for i := 0; i < 28; i++ {
		d := start.AddDate(0, 0, i)
		earned := 500.0
		if d.Weekday() == time.Monday {
			earned = 1000
		}
		sessions = append(sessions, session.WorkSession{
			Date: d.Format(session.DateLayout), DurationHours: 4, Earned: earned,
		})
	}

	got, ok := ComputeBestWeekday(sessions)
	if !ok {
		t.Fatal("not ok for non-empty input")
	}
	if got.Day != "Monday" {
		t.Errorf("Day = %q, want Monday", got.Day)
	}
	approx(t, got.AvgEarned, 1000, "AvgEarned")
}

func TestComputeBestWeekday_MeanPerWorkedDay(t *testing.T) {
	// Two Fridays, one worked heavily, one lightly: the mean decides, not
	// the raw total.
	sessions := []session.WorkSession{
		{Date: "2026-03-06", Earned: 900}, // Friday
		{Date: "2026-03-13", Earned: 100}, // Friday, mean 500
		{Date: "2026-03-10", Earned: 600}, // Tuesday, mean 600
	}

	got, ok := ComputeBestWeekday(sessions)
	if !ok {
		t.Fatal("not ok")
	}
	if got.Day != "Tuesday" {
		t.Errorf("Day = %q, want Tuesday", got.Day)
	}
	approx(t, got.AvgEarned, 600, "AvgEarned")
}

func TestComputeBestWeekday_TieGoesToLowestMondayFirstIndex(t *testing.T) {
	sessions := []session.WorkSession{
		{Date: "2026-03-08", Earned: 400}, // Sunday
		{Date: "2026-03-11", Earned: 400}, // Wednesday
	}

	got, ok := ComputeBestWeekday(sessions)
	if !ok {
		t.Fatal("not ok")
	}
	if got.Day != "Wednesday" {
		t.Errorf("Day = %q, want Wednesday (Monday-first tie-break)", got.Day)
	}
}

func TestComputeBestWeekday_Empty(t *testing.T) {
	if _, ok := ComputeBestWeekday(nil); ok {
		t.Error("empty input should return the sentinel")
	}
}
