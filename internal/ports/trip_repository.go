package ports

import (
	"context"
	"errors"
	"hos-recap-service/internal/domain"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when a trip does not exist.
var ErrNotFound = errors.New("not found")

// Port: a boundary for storing planner output per trip.
type TripRepository interface {
	// Store a trip and pre-create page 1 of the logbook for each of its days.
	SaveTrip(ctx context.Context, trip *domain.Trip) error
	// Retrieve one trip with its daily logs.
	GetTrip(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	// Retrieve the most recent trips, newest first, without their logs.
	ListTrips(ctx context.Context, limit int) ([]*domain.Trip, error)
}

// Port: a boundary for driver-edited logbook pages.
type LogbookRepository interface {
	// Create the page or merge the update into the existing one.
	UpsertPage(ctx context.Context, tripID uuid.UUID, u domain.LogbookUpdate) (*domain.LogbookPage, error)
	// Retrieve pages ordered by date and index. An empty date returns all.
	// An unknown trip is ErrNotFound.
	ListPages(ctx context.Context, tripID uuid.UUID, date string) ([]*domain.LogbookPage, error)
}
