package domain

import (
	"time"

	"github.com/google/uuid"
)

const MetersPerMile = 1609.34

// Trip is the stored planner output for one trip: where it runs, how far,
// and the per-day duty segments. Computed sheets are never stored on it.
type Trip struct {
	TripID          uuid.UUID
	CurrentLocation string
	PickupLocation  string
	DropoffLocation string
	CycleHoursUsed  float64
	DepartAt        *time.Time
	DistanceMeters  float64
	Logs            []DailyLog
	CreatedAt       time.Time
}

func (t *Trip) TotalMiles() float64 { return t.DistanceMeters / MetersPerMile }

// Dates returns the log dates in trip order.
func (t *Trip) Dates() []string {
	out := make([]string, 0, len(t.Logs))
	for _, l := range t.Logs {
		out = append(out, l.Date)
	}
	return out
}
