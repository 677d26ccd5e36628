package analyzer

import (
	"testing"

	"github.com/worklens/worklens/internal/session"
)

func TestComputePeakWindow_PicksHighestSpan(t *testing.T) {
	sessions := []session.WorkSession{
		{Date: "2026-03-02", Start: "09:00", End: "10:00", Earned: 2000},
		{Date: "2026-03-02", Start: "10:00", End: "11:00", Earned: 2200},
		{Date: "2026-03-02", Start: "11:00", End: "12:00", Earned: 2400},
		{Date: "2026-03-02", Start: "12:00", End: "13:00", Earned: 300},
		{Date: "2026-03-03", Start: "07:00", End: "08:00", Earned: 100},
	}

	got, ok := ComputePeakWindow(sessions, 3)
	if !ok {
		t.Fatal("not ok for timed sessions")
	}
	if got.StartHour != 9 || got.EndHour != 12 {
		t.Errorf("window = %d-%d, want 9-12", got.StartHour, got.EndHour)
	}
	approx(t, got.Rate, (2000+2200+2400)/3.0, "Rate")
}

func TestComputePeakWindow_SpreadsAcrossSpannedHours(t *testing.T) {
	// One 09:30-11:30 session earning 120: 30 min in hour 9, 60 in hour 10,
	// 30 in hour 11, all at rate 60/h.
	sessions := []session.WorkSession{
		{Date: "2026-03-02", Start: "09:30", End: "11:30", Earned: 120},
	}

	got, ok := ComputePeakWindow(sessions, 3)
	if !ok {
		t.Fatal("not ok")
	}
	if got.StartHour != 9 || got.EndHour != 12 {
		t.Errorf("window = %d-%d, want 9-12", got.StartHour, got.EndHour)
	}
	approx(t, got.Rate, 60, "Rate")
}

func TestComputePeakWindow_EmptyHoursDragTheMean(t *testing.T) {
	// Hour 8 at 900/h surrounded by silence: every candidate window also
	// contains zero-rate hours, so the mean is 300, not 900.
	sessions := []session.WorkSession{
		{Date: "2026-03-02", Start: "08:00", End: "09:00", Earned: 900},
	}

	got, ok := ComputePeakWindow(sessions, 3)
	if !ok {
		t.Fatal("not ok")
	}
	approx(t, got.Rate, 300, "Rate")
	if got.StartHour > 8 || got.EndHour <= 8 {
		t.Errorf("window %d-%d must contain hour 8", got.StartHour, got.EndHour)
	}
}

func TestComputePeakWindow_NoClockTimes(t *testing.T) {
	sessions := []session.WorkSession{
		{Date: "2026-03-02", DurationHours: 3, Earned: 300},
	}
	if _, ok := ComputePeakWindow(sessions, 3); ok {
		t.Error("sessions without clock times should return the sentinel")
	}
	if _, ok := ComputePeakWindow(nil, 3); ok {
		t.Error("empty input should return the sentinel")
	}
}
