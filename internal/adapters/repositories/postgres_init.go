package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hos-recap-service/internal/domain"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY,
		current_location TEXT NOT NULL DEFAULT '',
		pickup_location TEXT NOT NULL DEFAULT '',
		dropoff_location TEXT NOT NULL DEFAULT '',
		cycle_hours_used DOUBLE PRECISION NOT NULL DEFAULT 0,
		departure_at TIMESTAMPTZ,
		distance_meters DOUBLE PRECISION NOT NULL DEFAULT 0,
		logs JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createLogbookPagesQuery := `
	CREATE TABLE IF NOT EXISTS logbook_pages (
		id BIGSERIAL PRIMARY KEY,
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		log_date DATE NOT NULL,
		page_index INTEGER NOT NULL DEFAULT 1 CHECK (page_index >= 1),
		form_data JSONB NOT NULL DEFAULT '{}'::jsonb,
		sb_active BOOLEAN NOT NULL DEFAULT false,
		sb_hour DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (trip_id, log_date, page_index)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_trips_created_at
	ON trips(created_at DESC);
	`

	statements := []string{
		createTripsQuery,
		createLogbookPagesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TripSeed struct {
	ID                    string      `json:"id"`
	CurrentLocation       string      `json:"current_location"`
	PickupLocation        string      `json:"pickup_location"`
	DropoffLocation       string      `json:"dropoff_location"`
	CurrentCycleHoursUsed float64     `json:"current_cycle_hours_used"`
	DepartureDatetime     *time.Time  `json:"departure_datetime"`
	DistanceMeters        float64     `json:"distance_m"`
	Logs                  []logRecord `json:"logs"`
}

// Populate the database with demo trips from a JSON file.
// Seeding is idempotent when seeds carry fixed ids.
func SeedFromJSON(ctx context.Context, repo *PostgresTripRepository, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed trips: read %q: %w", jsonPath, err)
	}

	var data []TripSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed trips: parse json: %w", err)
	}

	for i, item := range data {
		trip, err := item.toDomain()
		if err != nil {
			return fmt.Errorf("seed trips: item at index %d: %w", i+1, err)
		}
		if err := repo.SaveTrip(ctx, trip); err != nil {
			return fmt.Errorf("seed trips: save trip_id=%s: %w", trip.TripID, err)
		}
	}

	return nil
}

func (s TripSeed) toDomain() (*domain.Trip, error) {
	id := uuid.Nil
	if strings.TrimSpace(s.ID) != "" {
		parsed, err := uuid.Parse(s.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", s.ID, err)
		}
		id = parsed
	}

	raw, err := json.Marshal(s.Logs)
	if err != nil {
		return nil, fmt.Errorf("re-encode logs: %w", err)
	}
	logs, err := decodeLogs(raw)
	if err != nil {
		return nil, err
	}

	return &domain.Trip{
		TripID:          id,
		CurrentLocation: s.CurrentLocation,
		PickupLocation:  s.PickupLocation,
		DropoffLocation: s.DropoffLocation,
		CycleHoursUsed:  s.CurrentCycleHoursUsed,
		DepartAt:        s.DepartureDatetime,
		DistanceMeters:  s.DistanceMeters,
		Logs:            logs,
	}, nil
}
