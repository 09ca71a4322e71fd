package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hos-recap-service/internal/domain"
	"hos-recap-service/internal/platform/obs"
	"hos-recap-service/internal/ports"
	"time"

	"github.com/google/uuid"
)

// Postgres-backed implementation of the TripRepository and LogbookRepository ports.
type PostgresTripRepository struct{ DB *sql.DB }

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

// Store the trip and pre-create page 1 for each log date.
// A zero TripID is replaced with a new random id.
func (s *PostgresTripRepository) SaveTrip(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "trips.repo.SaveTrip")(&err)

	if s.DB == nil {
		return errors.New("postgres trip repository: DB is nil")
	}
	if trip == nil {
		return errors.New("save trip: trip is nil")
	}
	if trip.TripID == uuid.Nil {
		trip.TripID = uuid.New()
	}

	logs, err := encodeLogs(trip.Logs)
	if err != nil {
		return fmt.Errorf("save trip: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save trip: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx, `
	INSERT INTO trips (
		id, current_location, pickup_location, dropoff_location,
		cycle_hours_used, departure_at, distance_meters, logs
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb)
	ON CONFLICT (id) DO UPDATE
	SET current_location = EXCLUDED.current_location,
		pickup_location = EXCLUDED.pickup_location,
		dropoff_location = EXCLUDED.dropoff_location,
		cycle_hours_used = EXCLUDED.cycle_hours_used,
		departure_at = EXCLUDED.departure_at,
		distance_meters = EXCLUDED.distance_meters,
		logs = EXCLUDED.logs
	RETURNING created_at;
	`,
		trip.TripID, trip.CurrentLocation, trip.PickupLocation, trip.DropoffLocation,
		trip.CycleHoursUsed, trip.DepartAt, trip.DistanceMeters, string(logs),
	).Scan(&trip.CreatedAt)
	if err != nil {
		return fmt.Errorf("save trip: insert trip_id=%s: %w", trip.TripID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO logbook_pages (trip_id, log_date, page_index)
	VALUES ($1, $2::date, 1)
	ON CONFLICT (trip_id, log_date, page_index) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("save trip: prepare logbook pages: %w", err)
	}
	defer stmt.Close()

	for _, date := range trip.Dates() {
		if _, err := stmt.ExecContext(ctx, trip.TripID, date); err != nil {
			return fmt.Errorf("save trip: create logbook page date=%s: %w", date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save trip: commit tx: %w", err)
	}

	return nil
}

func (s *PostgresTripRepository) GetTrip(ctx context.Context, id uuid.UUID) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.GetTrip")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	query := `
	SELECT
		id, current_location, pickup_location, dropoff_location,
		cycle_hours_used, departure_at, distance_meters, logs, created_at
	FROM trips
	WHERE id = $1;
	`

	var (
		t        domain.Trip
		departAt sql.NullTime
		rawLogs  []byte
	)
	err = s.DB.QueryRowContext(ctx, query, id).Scan(
		&t.TripID, &t.CurrentLocation, &t.PickupLocation, &t.DropoffLocation,
		&t.CycleHoursUsed, &departAt, &t.DistanceMeters, &rawLogs, &t.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get trip %s: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %s: query trips table: %w", id, err)
	}

	if departAt.Valid {
		d := departAt.Time
		t.DepartAt = &d
	}
	if t.Logs, err = decodeLogs(rawLogs); err != nil {
		return nil, fmt.Errorf("get trip %s: %w", id, err)
	}

	return &t, nil
}

// Return the latest trips, newest first. Logs are not loaded.
func (s *PostgresTripRepository) ListTrips(ctx context.Context, limit int) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.ListTrips")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	query := `
	SELECT
		id, current_location, pickup_location, dropoff_location,
		cycle_hours_used, departure_at, distance_meters, created_at
	FROM trips
	ORDER BY created_at DESC
	LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, limit)
	for rows.Next() {
		var (
			t        domain.Trip
			departAt sql.NullTime
		)
		if err := rows.Scan(
			&t.TripID, &t.CurrentLocation, &t.PickupLocation, &t.DropoffLocation,
			&t.CycleHoursUsed, &departAt, &t.DistanceMeters, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list trips: scan row: %w", err)
		}
		if departAt.Valid {
			d := departAt.Time
			t.DepartAt = &d
		}
		trips = append(trips, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

// Insert the page or merge the update into it. Form keys are merged with
// JSONB concatenation so a partial edit never drops earlier answers.
func (s *PostgresTripRepository) UpsertPage(
	ctx context.Context,
	tripID uuid.UUID,
	u domain.LogbookUpdate,
) (_ *domain.LogbookPage, err error) {
	defer obs.Time(ctx, "logbooks.repo.UpsertPage")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	form := u.FormData
	if form == nil {
		form = map[string]string{}
	}
	formJSON, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("upsert logbook page: encode form_data: %w", err)
	}

	var override domain.SleeperBerthOverride
	if u.SleeperBerth != nil {
		override = *u.SleeperBerth
	}

	query := `
	INSERT INTO logbook_pages (trip_id, log_date, page_index, form_data, sb_active, sb_hour)
	SELECT $1, $2::date, $3, $4::jsonb, $5, $6
	WHERE EXISTS (SELECT 1 FROM trips WHERE id = $1)
	ON CONFLICT (trip_id, log_date, page_index) DO UPDATE
	SET form_data = logbook_pages.form_data || EXCLUDED.form_data,
		sb_active = CASE WHEN $7 THEN EXCLUDED.sb_active ELSE logbook_pages.sb_active END,
		sb_hour = CASE WHEN $7 THEN EXCLUDED.sb_hour ELSE logbook_pages.sb_hour END,
		updated_at = now()
	RETURNING id, log_date, page_index, form_data, sb_active, sb_hour, created_at, updated_at;
	`

	page, err := scanPage(s.DB.QueryRowContext(ctx, query,
		tripID, u.Date, u.Index, string(formJSON),
		override.Active, override.Hour, u.SleeperBerth != nil,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("upsert logbook page: trip %s: %w", tripID, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert logbook page: trip %s date=%s index=%d: %w", tripID, u.Date, u.Index, err)
	}
	page.TripID = tripID

	return page, nil
}

func (s *PostgresTripRepository) ListPages(
	ctx context.Context,
	tripID uuid.UUID,
	date string,
) (_ []*domain.LogbookPage, err error) {
	defer obs.Time(ctx, "logbooks.repo.ListPages")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres trip repository: DB is nil")
	}

	var exists bool
	err = s.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1);`, tripID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("list logbook pages: check trip %s: %w", tripID, err)
	}
	if !exists {
		return nil, fmt.Errorf("list logbook pages: trip %s: %w", tripID, ports.ErrNotFound)
	}

	query := `
	SELECT id, log_date, page_index, form_data, sb_active, sb_hour, created_at, updated_at
	FROM logbook_pages
	WHERE trip_id = $1
		AND ($2 = '' OR log_date = NULLIF($2, '')::date)
	ORDER BY log_date, page_index;
	`
	rows, err := s.DB.QueryContext(ctx, query, tripID, date)
	if err != nil {
		return nil, fmt.Errorf("list logbook pages: query logbook_pages table: %w", err)
	}
	defer rows.Close()

	pages := make([]*domain.LogbookPage, 0, 8)
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("list logbook pages: scan row: %w", err)
		}
		p.TripID = tripID
		pages = append(pages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list logbook pages: row iteration: %w", err)
	}

	return pages, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*domain.LogbookPage, error) {
	var (
		p        domain.LogbookPage
		logDate  time.Time
		formJSON []byte
	)
	if err := row.Scan(
		&p.PageID, &logDate, &p.Index, &formJSON,
		&p.SleeperBerth.Active, &p.SleeperBerth.Hour, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Date = logDate.Format(time.DateOnly)
	if err := json.Unmarshal(formJSON, &p.FormData); err != nil {
		return nil, fmt.Errorf("decode form_data: %w", err)
	}

	return &p, nil
}
