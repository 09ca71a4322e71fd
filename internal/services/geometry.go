package services

import (
	"hos-recap-service/internal/domain"
	"math"
)

// connectTolerance is the largest gap, in hours, still drawn as a connector.
const connectTolerance = 1e-6

var statusRows = map[domain.DutyStatus]int{
	domain.StatusOff:     0,
	domain.StatusSleeper: 1,
	domain.StatusDriving: 2,
	domain.StatusOnDuty:  3,
}

// ToFraction places an instant on the day as a fraction in [0, 1] using only
// its clock fields.
func ToFraction(ts domain.Timestamp) float64 {
	return hoursToFraction(ts.HoursSinceMidnight())
}

// RowOf returns the grid row for a status, or -1 for an unknown status.
func RowOf(status domain.DutyStatus) int {
	row, ok := statusRows[status]
	if !ok {
		return -1
	}
	return row
}

// Connects reports whether a vertical connector joins an interval ending at
// prevEnd to one starting at nextStart (both in hours).
func Connects(prevEnd, nextStart float64) bool {
	return math.Abs(prevEnd-nextStart) <= connectTolerance
}

// LayoutDay maps a normalized day onto the grid.
func LayoutDay(day domain.NormalizedDay) []domain.Bar {
	bars := make([]domain.Bar, 0, len(day.Intervals))
	for i, iv := range day.Intervals {
		bars = append(bars, domain.Bar{
			Status:        iv.Status,
			Row:           RowOf(iv.Status),
			StartFraction: hoursToFraction(iv.Start),
			EndFraction:   hoursToFraction(iv.End),
			ConnectsPrev:  i > 0 && Connects(day.Intervals[i-1].End, iv.Start),
		})
	}
	return bars
}

// PlaceRemarks positions remark events on the day. Events without an end get
// the default span of their type, capped at midnight; types without a default
// are point marks.
func PlaceRemarks(events []domain.RemarkEvent) []domain.RemarkMark {
	marks := make([]domain.RemarkMark, 0, len(events))
	for _, ev := range events {
		mark := domain.RemarkMark{
			Event:         ev,
			StartFraction: ToFraction(ev.Start),
		}

		switch {
		case ev.End != nil:
			end := ToFraction(*ev.End)
			if end < mark.StartFraction {
				// Ends on a later day.
				end = 1
			}
			mark.EndFraction = &end
		case ev.Type.DefaultDuration() > 0:
			end := math.Min(1, mark.StartFraction+ev.Type.DefaultDuration().Hours()/hoursPerDay)
			mark.EndFraction = &end
		}

		marks = append(marks, mark)
	}
	return marks
}

func hoursToFraction(h float64) float64 {
	return clampHours(h) / hoursPerDay
}
