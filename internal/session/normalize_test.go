package session

import "testing"

func TestNormalize_DropsRecordsWithoutValidDate(t *testing.T) {
	raw := []any{
		map[string]any{"id": "a", "date": "2026-03-02", "earned": 100.0},
		map[string]any{"id": "b", "earned": 50.0},
		map[string]any{"id": "c", "date": "not-a-date", "earned": 50.0},
		map[string]any{"id": "d", "date": "2026-02-30", "earned": 50.0},
		nil,
	}

	got := Normalize(raw)
	if len(got) != 1 {
		t.Fatalf("Normalize kept %d sessions, want 1", len(got))
	}
	if got[0].ID != "a" {
		t.Errorf("kept session %q, want %q", got[0].ID, "a")
	}
}

func TestNormalize_NonObjectElementsSkipped(t *testing.T) {
	// A JSON array can mix records with scalars and nested arrays; only the
	// bad elements drop, never their neighbors.
	raw := []any{
		"just a string",
		42.0,
		[]any{"nested"},
		true,
		nil,
		map[string]any{"id": "keep", "date": "2026-03-02", "earned": 75.0},
	}

	got := Normalize(raw)
	if len(got) != 1 {
		t.Fatalf("Normalize kept %d sessions, want 1", len(got))
	}
	if got[0].ID != "keep" || got[0].Earned != 75.0 {
		t.Errorf("kept session = %+v, want id=keep earned=75", got[0])
	}
}

func TestNormalize_EarnedCoercion(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want float64
	}{
		{"number", 1250.5, 1250.5},
		{"numeric string", "980.25", 980.25},
		{"garbage string", "lots", 0},
		{"missing", nil, 0},
		{"negative clamped", -40.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := map[string]any{"date": "2026-03-02"}
			if tt.val != nil {
				rec["earned"] = tt.val
			}
			got := Normalize([]any{rec})
			if len(got) != 1 {
				t.Fatalf("expected 1 session, got %d", len(got))
			}
			if got[0].Earned != tt.want {
				t.Errorf("Earned = %v, want %v", got[0].Earned, tt.want)
			}
		})
	}
}

func TestNormalize_DurationDerivedFromClockTimes(t *testing.T) {
	got := Normalize([]any{
		map[string]any{"date": "2026-03-02", "start": "09:00", "end": "12:30"},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 session, got %d", len(got))
	}
	if got[0].DurationHours != 3.5 {
		t.Errorf("DurationHours = %v, want 3.5", got[0].DurationHours)
	}
}

func TestNormalize_NegativeDurationClampedToZero(t *testing.T) {
	// End before start on the same day is a data-ordering problem upstream;
	// it must come out as zero, never negative.
	got := Normalize([]any{
		map[string]any{"date": "2026-03-02", "start": "14:00", "end": "09:00"},
		map[string]any{"date": "2026-03-02", "duration": -2.5},
	})
	for i, s := range got {
		if s.DurationHours != 0 {
			t.Errorf("session %d: DurationHours = %v, want 0", i, s.DurationHours)
		}
	}
}

func TestNormalize_ExplicitDurationWins(t *testing.T) {
	got := Normalize([]any{
		map[string]any{"date": "2026-03-02", "start": "09:00", "end": "17:00", "duration": 6.0},
	})
	if got[0].DurationHours != 6.0 {
		t.Errorf("DurationHours = %v, want explicit 6.0", got[0].DurationHours)
	}
}

func TestNormalize_CategoryAliases(t *testing.T) {
	tests := []struct {
		name string
		rec  map[string]any
		want string
	}{
		{"category", map[string]any{"date": "2026-03-02", "category": "design"}, "design"},
		{"categoryId", map[string]any{"date": "2026-03-02", "categoryId": "cat-7"}, "cat-7"},
		{"snake case", map[string]any{"date": "2026-03-02", "category_id": "cat-9"}, "cat-9"},
		{"category preferred", map[string]any{"date": "2026-03-02", "category": "design", "categoryId": "cat-7"}, "design"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]any{tt.rec})
			if got[0].Category != tt.want {
				t.Errorf("Category = %q, want %q", got[0].Category, tt.want)
			}
		})
	}
}

func TestNormalize_InvalidClockTimesCleared(t *testing.T) {
	got := Normalize([]any{
		map[string]any{"date": "2026-03-02", "start": "25:00", "end": "9:75"},
	})
	if got[0].Start != "" || got[0].End != "" {
		t.Errorf("invalid clock times should be cleared, got start=%q end=%q", got[0].Start, got[0].End)
	}
	if got[0].DurationHours != 0 {
		t.Errorf("DurationHours = %v, want 0 without valid times", got[0].DurationHours)
	}
}

func TestNormalize_UnpaddedDate(t *testing.T) {
	got := Normalize([]any{
		map[string]any{"date": "2026-3-2"},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 session, got %d", len(got))
	}
	if got[0].Date != "2026-03-02" {
		t.Errorf("Date = %q, want zero-padded 2026-03-02", got[0].Date)
	}
}

func TestWorkSession_StartHour(t *testing.T) {
	s := WorkSession{Start: "09:45"}
	h, ok := s.StartHour()
	if !ok || h != 9 {
		t.Errorf("StartHour = %d, %v; want 9, true", h, ok)
	}

	if _, ok := (WorkSession{}).StartHour(); ok {
		t.Error("StartHour on empty start should report not ok")
	}
}
