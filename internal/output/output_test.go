package output

import (
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	SetNoColor(true)
	m.Run()
}

func TestTableRender(t *testing.T) {
	tbl := NewTable("DATE", "EARNED")
	tbl.AddRow("2026-03-02", "300.00")
	tbl.AddRow("2026-03-03", "90.00")

	got := tbl.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header+separator+2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "DATE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "300.00") {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTableAlignRight(t *testing.T) {
	tbl := NewTable("DATE", "EARNED").AlignRight(1)
	tbl.AddRow("2026-03-02", "9.00")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	row := lines[2]
	if !strings.HasSuffix(row, "9.00") || strings.Contains(row, "9.00 ") {
		t.Errorf("right-aligned cell = %q", row)
	}
}

func TestScoreBar(t *testing.T) {
	got := ScoreBar(80, 10)
	if !strings.Contains(got, "80/100") {
		t.Errorf("ScoreBar = %q", got)
	}
	if strings.Count(got, "█") != 8 {
		t.Errorf("ScoreBar filled = %d, want 8", strings.Count(got, "█"))
	}

	// Out-of-range scores clamp instead of panicking.
	if !strings.Contains(ScoreBar(150, 10), "150/100") {
		t.Error("over-100 score should still render")
	}
}

func TestFactorBar(t *testing.T) {
	got := FactorBar(20, 40, 10)
	if strings.Count(got, "█") != 5 {
		t.Errorf("FactorBar filled = %d, want 5", strings.Count(got, "█"))
	}
	if !strings.Contains(got, "20.0/40") {
		t.Errorf("FactorBar = %q", got)
	}
}

func TestTrendArrowPercent(t *testing.T) {
	if got := TrendArrowPercent(12); !strings.Contains(got, "▲ +12%") {
		t.Errorf("rising arrow = %q", got)
	}
	if got := TrendArrowPercent(-8); !strings.Contains(got, "▼ -8%") {
		t.Errorf("falling arrow = %q", got)
	}
	if got := TrendArrowPercent(0); !strings.Contains(got, "─") {
		t.Errorf("flat arrow = %q", got)
	}
}

func TestMoney(t *testing.T) {
	if got := Money(1234.567); got != "1234.57" {
		t.Errorf("Money = %q", got)
	}
}
