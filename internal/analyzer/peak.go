package analyzer

import "github.com/worklens/worklens/internal/session"

// DefaultPeakWindowHours is the width of the sliding clock-hour window used
// by ComputePeakWindow.
const DefaultPeakWindowHours = 3

// hourBucket accumulates worked time and earnings attributed to one clock
// hour of the day.
type hourBucket struct {
	hours  float64
	earned float64
}

// ComputePeakWindow finds the contiguous span of clock hours with the
// highest mean hourly rate. Each session's earnings are spread across the
// hours it spans in proportion to the minutes worked in each; hours with no
// observed work count as rate 0 rather than being skipped, so a quiet hour
// inside a window drags the window down. Ties go to the earliest start hour.
//
// The boolean is false when no session carries usable clock times.
func ComputePeakWindow(sessions []session.WorkSession, windowHours int) (PeakWindow, bool) {
	if windowHours < 1 || windowHours > 24 {
		windowHours = DefaultPeakWindowHours
	}

	var buckets [24]hourBucket
	any := false
	for _, s := range sessions {
		start, ok := s.StartMinutes()
		if !ok {
			continue
		}
		end, ok := s.EndMinutes()
		if !ok || end <= start {
			continue
		}
		any = true
		total := float64(end - start)
		for h := start / 60; h <= (end-1)/60; h++ {
			lo := h * 60
			hi := lo + 60
			if lo < start {
				lo = start
			}
			if hi > end {
				hi = end
			}
			overlap := float64(hi - lo)
			buckets[h].hours += overlap / 60
			buckets[h].earned += s.Earned * overlap / total
		}
	}
	if !any {
		return PeakWindow{}, false
	}

	var rates [24]float64
	for h, b := range buckets {
		if b.hours > 0 {
			rates[h] = b.earned / b.hours
		}
	}

	best := PeakWindow{StartHour: -1}
	for start := 0; start+windowHours <= 24; start++ {
		var sum float64
		observed := false
		for h := start; h < start+windowHours; h++ {
			sum += rates[h]
			if buckets[h].hours > 0 {
				observed = true
			}
		}
		if !observed {
			continue
		}
		mean := sum / float64(windowHours)
		if best.StartHour == -1 || mean > best.Rate {
			best = PeakWindow{StartHour: start, EndHour: start + windowHours, Rate: mean}
		}
	}
	if best.StartHour == -1 {
		return PeakWindow{}, false
	}
	return best, true
}
