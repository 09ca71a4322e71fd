package services

import (
	"hos-recap-service/internal/domain"
	"slices"
)

const hoursPerDay = 24.0

// Normalize partitions one calendar day into contiguous duty intervals.
//
// Segment endpoints are measured from the day's midnight and clamped into
// [0, 24]. Intervals that are empty after clamping are dropped. Gaps are filled
// with OFF. When the override is active the picture is cut at the override
// hour and the rest of the day is SB. Adjacent intervals of the same status
// are not merged. Segments with an unknown status are dropped, so the day is
// always a full partition even for unvalidated input.
func Normalize(day domain.DailyLog, override domain.SleeperBerthOverride) domain.NormalizedDay {
	nd, _ := normalize(day, override)
	return nd
}

// normalize also reports how many input segments contributed nothing.
func normalize(day domain.DailyLog, override domain.SleeperBerthOverride) (domain.NormalizedDay, int) {
	dropped := 0
	cut := hoursPerDay
	if override.Active {
		cut = clampHours(override.Hour)
	}

	raw := make([]domain.Interval, 0, len(day.Segments))
	for _, seg := range day.Segments {
		if !seg.Status.Valid() {
			dropped++
			continue
		}

		start := clampHours(seg.Start.HoursFrom(day.Date))
		end := clampHours(seg.End.HoursFrom(day.Date))
		if end <= start {
			dropped++
			continue
		}

		if override.Active {
			if start >= cut {
				dropped++
				continue
			}
			if end > cut {
				end = cut
			}
		}

		raw = append(raw, domain.Interval{Status: seg.Status, Start: start, End: end})
	}

	// Stable so equal starts keep planner order.
	slices.SortStableFunc(raw, func(a, b domain.Interval) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})

	out := make([]domain.Interval, 0, len(raw)*2+2)
	cursor := 0.0
	for _, iv := range raw {
		if iv.End <= cursor {
			dropped++
			continue
		}

		if iv.Start > cursor {
			out = append(out, domain.Interval{Status: domain.StatusOff, Start: cursor, End: iv.Start})
		} else if iv.Start < cursor {
			// Overlap with an earlier interval: the earlier one wins.
			iv.Start = cursor
		}

		out = append(out, iv)
		cursor = iv.End
	}

	if cursor < cut {
		out = append(out, domain.Interval{Status: domain.StatusOff, Start: cursor, End: cut})
		cursor = cut
	}
	if override.Active && cursor < hoursPerDay {
		out = append(out, domain.Interval{Status: domain.StatusSleeper, Start: cursor, End: hoursPerDay})
	}

	return domain.NormalizedDay{Date: day.Date, Intervals: out}, dropped
}

func clampHours(h float64) float64 {
	if h < 0 {
		return 0
	}
	if h > hoursPerDay {
		return hoursPerDay
	}
	return h
}
