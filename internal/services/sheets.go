package services

import (
	"context"
	"hos-recap-service/internal/domain"
	"hos-recap-service/internal/platform/obs"
	"hos-recap-service/internal/ports"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// Days are independent until the recap step, so they normalize in parallel.
const normalizeWorkers = 8

type BuildSheetsRequest struct {
	// TripID tags published sheets. It may be empty for ad-hoc requests.
	TripID     string
	Logs       []domain.DailyLog
	TotalMiles float64
	// Overrides are keyed by log date. Missing dates are inactive.
	Overrides map[string]domain.SleeperBerthOverride
}

// SheetBuilder turns a trip's daily logs into rendered-ready day sheets.
// Metrics and Publisher are optional.
type SheetBuilder struct {
	Metrics   ports.EngineMetrics
	Publisher ports.SheetPublisher
}

// Build validates the logs and computes one sheet per day: the normalized
// timeline, per-status totals, recap, apportioned miles and grid geometry.
//
// The only error besides context cancellation is a ValidationError for a
// structurally invalid day. Publishing failures are logged and dropped.
func (b *SheetBuilder) Build(ctx context.Context, req BuildSheetsRequest) (_ []domain.DaySheet, err error) {
	defer obs.Time(ctx, "sheets.Build")(&err)
	started := time.Now()

	if err := ValidateDays(req.Logs); err != nil {
		if b.Metrics != nil {
			b.Metrics.ValidationFailed()
		}
		return nil, err
	}

	days := make([]domain.NormalizedDay, len(req.Logs))
	dropped := make([]int, len(req.Logs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(normalizeWorkers)
	for i, day := range req.Logs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			days[i], dropped[i] = normalize(day, req.Overrides[day.Date])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	onDuty := OnDutyPerDay(days)
	miles := ApportionMiles(req.TotalMiles, DrivingPerDay(days))
	recaps := RecapAll(onDuty)

	sheets := make([]domain.DaySheet, 0, len(days))
	for i, nd := range days {
		totals := Totals(nd)
		sheets = append(sheets, domain.DaySheet{
			DayIndex:    i,
			Date:        nd.Date,
			Override:    req.Overrides[nd.Date],
			Day:         nd,
			Totals:      totals,
			OnDutyHours: totals.OnDuty(),
			Recap:       recaps[i],
			Miles:       miles[i],
			Bars:        LayoutDay(nd),
			Remarks:     PlaceRemarks(req.Logs[i].RemarkEvents),
		})

		if b.Metrics != nil {
			b.Metrics.DayNormalized(dropped[i])
		}
	}

	if b.Metrics != nil {
		b.Metrics.SheetsBuilt(len(sheets), time.Since(started))
	}

	b.publish(ctx, req.TripID, sheets)

	return sheets, nil
}

func (b *SheetBuilder) publish(ctx context.Context, tripID string, sheets []domain.DaySheet) {
	if b.Publisher == nil || tripID == "" {
		return
	}
	for _, s := range sheets {
		if err := b.Publisher.PublishSheet(ctx, tripID, s); err != nil {
			log.Printf("publish sheet failed: trip_id=%s date=%s err=%v", tripID, s.Date, err)
		}
	}
}
