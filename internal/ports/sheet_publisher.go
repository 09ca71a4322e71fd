package ports

import (
	"context"
	"hos-recap-service/internal/domain"
)

// Contract for fanning computed day sheets out to other consumers.
type SheetPublisher interface {
	PublishSheet(ctx context.Context, tripID string, sheet domain.DaySheet) error
}
