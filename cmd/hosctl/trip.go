package main

import (
	"context"
	"encoding/json"
	"fmt"
	"hos-recap-service/internal/adapters/repositories"
	"hos-recap-service/internal/api/dto"
	"hos-recap-service/internal/domain"
	"hos-recap-service/internal/services"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadTrip reads a trip in the POST /trips shape from a JSON or YAML file.
func loadTrip(path string) (*domain.Trip, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trip %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// Round-trip through JSON so the wire field names apply to both formats.
		var doc any
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml %q: %w", path, err)
		}
		if b, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("convert yaml %q: %w", path, err)
		}
	}

	var req dto.TripRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, fmt.Errorf("parse trip %q: %w", path, err)
	}
	return req.ToDomain(), nil
}

// parseOverrides turns repeated DATE=HH:MM flags into logbook updates.
func parseOverrides(flags []string) ([]domain.LogbookUpdate, error) {
	updates := make([]domain.LogbookUpdate, 0, len(flags))
	for _, f := range flags {
		date, clock, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --sb %q: want DATE=HH:MM", f)
		}
		if _, err := domain.ParseClock(clock); err != nil {
			return nil, fmt.Errorf("invalid --sb %q: %w", f, err)
		}
		o := domain.NewSleeperBerthOverride(true, clock)
		updates = append(updates, domain.LogbookUpdate{
			Date:         strings.TrimSpace(date),
			Index:        1,
			SleeperBerth: &o,
		})
	}
	return updates, nil
}

// buildSheets runs a trip through the same path the server uses: the trip is
// stored, overrides are saved on its logbook pages, then sheets are built.
func buildSheets(ctx context.Context, path string, sb []string, miles float64) ([]domain.DaySheet, error) {
	trip, err := loadTrip(path)
	if err != nil {
		return nil, err
	}
	updates, err := parseOverrides(sb)
	if err != nil {
		return nil, err
	}

	repo := repositories.NewMemoryTripRepository()
	if err := repo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	for _, u := range updates {
		if _, err := repo.UpsertPage(ctx, trip.TripID, u); err != nil {
			return nil, err
		}
	}
	pages, err := repo.ListPages(ctx, trip.TripID, "")
	if err != nil {
		return nil, err
	}

	total := trip.TotalMiles()
	if miles >= 0 {
		total = miles
	}

	builder := &services.SheetBuilder{}
	return builder.Build(ctx, services.BuildSheetsRequest{
		Logs:       trip.Logs,
		TotalMiles: total,
		Overrides:  domain.OverridesByDate(pages),
	})
}
