package dto

import (
	"hos-recap-service/internal/domain"
	"time"
)

type TripRequest struct {
	CurrentLocation       string            `json:"current_location"`
	PickupLocation        string            `json:"pickup_location"`
	DropoffLocation       string            `json:"dropoff_location"`
	CurrentCycleHoursUsed float64           `json:"current_cycle_hours_used"`
	DepartureDatetime     *time.Time        `json:"departure_datetime"`
	DistanceMeters        float64           `json:"distance_m"`
	Logs                  []DailyLogPayload `json:"logs"`
}

func (r TripRequest) ToDomain() *domain.Trip {
	return &domain.Trip{
		CurrentLocation: r.CurrentLocation,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		CycleHoursUsed:  r.CurrentCycleHoursUsed,
		DepartAt:        r.DepartureDatetime,
		DistanceMeters:  r.DistanceMeters,
		Logs:            ToDailyLogs(r.Logs),
	}
}

type TripSummaryResponse struct {
	ID                    string     `json:"id"`
	CreatedAt             time.Time  `json:"created_at"`
	CurrentLocation       string     `json:"current_location"`
	PickupLocation        string     `json:"pickup_location"`
	DropoffLocation       string     `json:"dropoff_location"`
	CurrentCycleHoursUsed float64    `json:"current_cycle_hours_used"`
	DepartureDatetime     *time.Time `json:"departure_datetime"`
	DistanceMeters        float64    `json:"distance_m"`
}

type TripResponse struct {
	TripSummaryResponse
	Logs []DailyLogPayload `json:"logs"`
}

type ListTripsResponse struct {
	Results []TripSummaryResponse `json:"results"`
}

func NewTripSummaryResponse(t *domain.Trip) TripSummaryResponse {
	return TripSummaryResponse{
		ID:                    t.TripID.String(),
		CreatedAt:             t.CreatedAt,
		CurrentLocation:       t.CurrentLocation,
		PickupLocation:        t.PickupLocation,
		DropoffLocation:       t.DropoffLocation,
		CurrentCycleHoursUsed: t.CycleHoursUsed,
		DepartureDatetime:     t.DepartAt,
		DistanceMeters:        t.DistanceMeters,
	}
}

func NewTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		TripSummaryResponse: NewTripSummaryResponse(t),
		Logs:                NewDailyLogPayloads(t.Logs),
	}
}
