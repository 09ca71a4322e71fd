package services

import "hos-recap-service/internal/domain"

// Totals sums interval hours per duty status. All four statuses are present
// in the result, zero or not.
func Totals(day domain.NormalizedDay) domain.StatusTotals {
	totals := make(domain.StatusTotals, len(domain.Statuses))
	for _, s := range domain.Statuses {
		totals[s] = 0
	}

	for _, iv := range day.Intervals {
		if !iv.Status.Valid() {
			continue
		}
		totals[iv.Status] += iv.Hours()
	}

	return totals
}

// OnDutyPerDay maps each normalized day to its D+ON hours.
func OnDutyPerDay(days []domain.NormalizedDay) []float64 {
	out := make([]float64, len(days))
	for i, d := range days {
		out[i] = Totals(d).OnDuty()
	}
	return out
}

// DrivingPerDay maps each normalized day to its driving-only hours.
func DrivingPerDay(days []domain.NormalizedDay) []float64 {
	out := make([]float64, len(days))
	for i, d := range days {
		out[i] = Totals(d)[domain.StatusDriving]
	}
	return out
}
