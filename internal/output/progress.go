package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for a 0-100 score.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// FactorBar renders a progress bar for one score factor against its point
// ceiling. Example: "███████░░░ 28.0/40"
func FactorBar(value, max float64, width int) string {
	if width <= 0 {
		width = 10
	}
	frac := 0.0
	if max > 0 {
		frac = value / max
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", bar, StyleMuted.Render(fmt.Sprintf("%.1f/%.0f", value, max)))
}

// TrendArrow returns a styled trend indicator for a delta value.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
func TrendArrow(delta float64) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	if delta > 0 {
		return StyleSuccess.Render(fmt.Sprintf("▲ +%.2f", delta))
	}
	return StyleError.Render(fmt.Sprintf("▼ %.2f", delta))
}

// TrendArrowPercent returns a styled trend indicator for a percentage delta.
func TrendArrowPercent(delta float64) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	if delta > 0 {
		return StyleSuccess.Render(fmt.Sprintf("▲ +%.0f%%", delta))
	}
	return StyleError.Render(fmt.Sprintf("▼ %.0f%%", delta))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
