package services

import (
	"hos-recap-service/internal/domain"
	"math"
)

// Window lengths, today included.
const (
	seventyWindowDays    = 7
	seventyAltWindowDays = 8
	sixtyWindowDays      = 5
	sixtyAltWindowDays   = 7
)

// Recap computes the end-of-day recap for onDutyPerDay[dayIndex].
//
// Every window is a closed-form sum over the days ending at dayIndex, clipped
// at the first day of the trip. Later days never contribute, so any day can be
// queried on its own. Negative inputs count as zero hours.
func Recap(onDutyPerDay []float64, dayIndex int) (domain.RecapValues, error) {
	if dayIndex < 0 || dayIndex >= len(onDutyPerDay) {
		return domain.RecapValues{}, Error.New("recap: day index %d out of range [0,%d)", dayIndex, len(onDutyPerDay))
	}

	seventyA := windowSum(onDutyPerDay, dayIndex, seventyWindowDays)
	sixtyA := windowSum(onDutyPerDay, dayIndex, sixtyWindowDays)

	return domain.RecapValues{
		OnDutyToday: nonNegative(onDutyPerDay[dayIndex]),
		SeventyA:    seventyA,
		SeventyB:    math.Max(0, domain.SeventyHourLimit-seventyA),
		SeventyC:    windowSum(onDutyPerDay, dayIndex, seventyAltWindowDays),
		SixtyA:      sixtyA,
		SixtyB:      math.Max(0, domain.SixtyHourLimit-sixtyA),
		SixtyC:      windowSum(onDutyPerDay, dayIndex, sixtyAltWindowDays),
	}, nil
}

// RecapAll computes the recap for every day of the trip.
func RecapAll(onDutyPerDay []float64) []domain.RecapValues {
	out := make([]domain.RecapValues, len(onDutyPerDay))
	for i := range onDutyPerDay {
		// Index is always in range here.
		out[i], _ = Recap(onDutyPerDay, i)
	}
	return out
}

// windowSum adds the `days` values ending at idx.
func windowSum(values []float64, idx, days int) float64 {
	from := max(0, idx-days+1)
	sum := 0.0
	for _, v := range values[from : idx+1] {
		sum += nonNegative(v)
	}
	return sum
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
