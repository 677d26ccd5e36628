package analyzer

import (
	"testing"
	"time"

	"github.com/worklens/worklens/internal/session"
)

var anomalyNow = time.Date(2026, time.March, 11, 18, 0, 0, 0, time.UTC)

// baselineDays logs one session per day for the given count of days ending
// yesterday, each earning daily.
func baselineDays(count int, daily float64) []session.WorkSession {
	var out []session.WorkSession
	for i := 1; i <= count; i++ {
		d := anomalyNow.AddDate(0, 0, -i)
		out = append(out, session.WorkSession{
			Date: d.Format(session.DateLayout), DurationHours: 4, Earned: daily,
		})
	}
	return out
}

func TestComputeTodayAnomaly_Above(t *testing.T) {
	sessions := append(baselineDays(10, 100),
		session.WorkSession{Date: "2026-03-11", DurationHours: 8, Earned: 250})

	got, ok := ComputeTodayAnomaly(sessions, anomalyNow,
		DefaultAnomalyBaselineDays, DefaultAnomalyMinBaselineDays, DefaultAnomalyThresholdPercent)
	if !ok {
		t.Fatal("expected an anomaly")
	}
	if got.Direction != AnomalyAbove {
		t.Errorf("Direction = %s, want above", got.Direction)
	}
	approx(t, got.Percent, 150, "Percent")
	approx(t, got.Total, 250, "Total")
}

func TestComputeTodayAnomaly_Below(t *testing.T) {
	sessions := append(baselineDays(10, 100),
		session.WorkSession{Date: "2026-03-11", DurationHours: 1, Earned: 20})

	got, ok := ComputeTodayAnomaly(sessions, anomalyNow,
		DefaultAnomalyBaselineDays, DefaultAnomalyMinBaselineDays, DefaultAnomalyThresholdPercent)
	if !ok {
		t.Fatal("expected an anomaly")
	}
	if got.Direction != AnomalyBelow {
		t.Errorf("Direction = %s, want below", got.Direction)
	}
	approx(t, got.Percent, 80, "Percent")
}

func TestComputeTodayAnomaly_WithinThreshold(t *testing.T) {
	sessions := append(baselineDays(10, 100),
		session.WorkSession{Date: "2026-03-11", DurationHours: 5, Earned: 120})

	if _, ok := ComputeTodayAnomaly(sessions, anomalyNow,
		DefaultAnomalyBaselineDays, DefaultAnomalyMinBaselineDays, DefaultAnomalyThresholdPercent); ok {
		t.Error("a 20% deviation is inside the 40% threshold")
	}
}

func TestComputeTodayAnomaly_BaselineFloor(t *testing.T) {
	// Only 3 worked baseline days, under the 5-day floor.
	sessions := append(baselineDays(3, 100),
		session.WorkSession{Date: "2026-03-11", DurationHours: 8, Earned: 500})

	if _, ok := ComputeTodayAnomaly(sessions, anomalyNow,
		DefaultAnomalyBaselineDays, DefaultAnomalyMinBaselineDays, DefaultAnomalyThresholdPercent); ok {
		t.Error("too few baseline days should return the sentinel")
	}
}

func TestComputeTodayAnomaly_NonUTCClock(t *testing.T) {
	// The local evening east of UTC is still the same calendar day the
	// sessions were logged under.
	localNow := time.Date(2026, time.March, 11, 18, 0, 0, 0, time.FixedZone("UTC+9", 9*3600))
	var sessions []session.WorkSession
	for i := 1; i <= 10; i++ {
		d := localNow.AddDate(0, 0, -i)
		sessions = append(sessions, session.WorkSession{
			Date: d.Format(session.DateLayout), DurationHours: 4, Earned: 100,
		})
	}
	sessions = append(sessions, session.WorkSession{Date: "2026-03-11", DurationHours: 8, Earned: 250})

	got, ok := ComputeTodayAnomaly(sessions, localNow,
		DefaultAnomalyBaselineDays, DefaultAnomalyMinBaselineDays, DefaultAnomalyThresholdPercent)
	if !ok {
		t.Fatal("expected an anomaly regardless of the process timezone")
	}
	if got.Direction != AnomalyAbove {
		t.Errorf("Direction = %s, want above", got.Direction)
	}
	approx(t, got.Percent, 150, "Percent")
}

func TestComputeTodayAnomaly_TodayExcludedFromBaseline(t *testing.T) {
	// Today's huge total must not pull its own baseline up.
	sessions := append(baselineDays(30, 100),
		session.WorkSession{Date: "2026-03-11", DurationHours: 10, Earned: 10000})

	got, ok := ComputeTodayAnomaly(sessions, anomalyNow,
		DefaultAnomalyBaselineDays, DefaultAnomalyMinBaselineDays, DefaultAnomalyThresholdPercent)
	if !ok {
		t.Fatal("expected an anomaly")
	}
	approx(t, got.Percent, 9900, "Percent")
}
