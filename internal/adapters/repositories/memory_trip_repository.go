package repositories

import (
	"cmp"
	"context"
	"fmt"
	"hos-recap-service/internal/domain"
	"hos-recap-service/internal/ports"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type pageKey struct {
	tripID uuid.UUID
	date   string
	index  int
}

// MemoryTripRepository keeps trips and logbook pages in process memory.
// It backs the offline CLI and handler tests and is safe for concurrent use.
type MemoryTripRepository struct {
	mu     sync.Mutex
	now    func() time.Time
	trips  map[uuid.UUID]*domain.Trip
	pages  map[pageKey]*domain.LogbookPage
	nextID int64
}

func NewMemoryTripRepository() *MemoryTripRepository {
	return &MemoryTripRepository{
		now:   time.Now,
		trips: make(map[uuid.UUID]*domain.Trip),
		pages: make(map[pageKey]*domain.LogbookPage),
	}
}

func (m *MemoryTripRepository) SaveTrip(ctx context.Context, trip *domain.Trip) error {
	if trip == nil {
		return fmt.Errorf("save trip: trip is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if trip.TripID == uuid.Nil {
		trip.TripID = uuid.New()
	}
	if prev, ok := m.trips[trip.TripID]; ok {
		trip.CreatedAt = prev.CreatedAt
	} else {
		trip.CreatedAt = m.now()
	}

	stored := *trip
	stored.Logs = slices.Clone(trip.Logs)
	m.trips[trip.TripID] = &stored

	for _, date := range trip.Dates() {
		k := pageKey{tripID: trip.TripID, date: date, index: 1}
		if _, ok := m.pages[k]; !ok {
			m.pages[k] = m.newPage(k)
		}
	}

	return nil
}

func (m *MemoryTripRepository) GetTrip(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trips[id]
	if !ok {
		return nil, fmt.Errorf("get trip %s: %w", id, ports.ErrNotFound)
	}
	out := *t
	return &out, nil
}

func (m *MemoryTripRepository) ListTrips(ctx context.Context, limit int) ([]*domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	trips := make([]*domain.Trip, 0, len(m.trips))
	for _, t := range m.trips {
		out := *t
		out.Logs = nil
		trips = append(trips, &out)
	}
	slices.SortFunc(trips, func(a, b *domain.Trip) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.TripID.String(), b.TripID.String())
	})

	if limit >= 0 && len(trips) > limit {
		trips = trips[:limit]
	}
	return trips, nil
}

func (m *MemoryTripRepository) UpsertPage(ctx context.Context, tripID uuid.UUID, u domain.LogbookUpdate) (*domain.LogbookPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.trips[tripID]; !ok {
		return nil, fmt.Errorf("upsert logbook page: trip %s: %w", tripID, ports.ErrNotFound)
	}

	k := pageKey{tripID: tripID, date: u.Date, index: u.Index}
	p, ok := m.pages[k]
	if !ok {
		p = m.newPage(k)
		m.pages[k] = p
	}
	p.Apply(u)
	p.UpdatedAt = m.now()

	return clonePage(p), nil
}

func (m *MemoryTripRepository) ListPages(ctx context.Context, tripID uuid.UUID, date string) ([]*domain.LogbookPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.trips[tripID]; !ok {
		return nil, fmt.Errorf("list logbook pages: trip %s: %w", tripID, ports.ErrNotFound)
	}

	pages := make([]*domain.LogbookPage, 0, 8)
	for k, p := range m.pages {
		if k.tripID != tripID || (date != "" && k.date != date) {
			continue
		}
		pages = append(pages, clonePage(p))
	}
	slices.SortFunc(pages, func(a, b *domain.LogbookPage) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	return pages, nil
}

// newPage must be called with mu held.
func (m *MemoryTripRepository) newPage(k pageKey) *domain.LogbookPage {
	m.nextID++
	now := m.now()
	return &domain.LogbookPage{
		PageID:    m.nextID,
		TripID:    k.tripID,
		Date:      k.date,
		Index:     k.index,
		FormData:  map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func clonePage(p *domain.LogbookPage) *domain.LogbookPage {
	out := *p
	out.FormData = maps.Clone(p.FormData)
	return &out
}
