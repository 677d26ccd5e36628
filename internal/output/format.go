package output

import "fmt"

// Money formats an amount with two decimals. Rounding happens only here;
// everything upstream carries full float precision.
func Money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// Hours formats an hour count, trimming to one decimal.
func Hours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// ClockHour formats an hour-of-day as "HH:00".
func ClockHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
