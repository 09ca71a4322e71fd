package ports

import "time"

// Contract for recording engine activity.
type EngineMetrics interface {
	DayNormalized(droppedSegments int)
	ValidationFailed()
	SheetsBuilt(days int, d time.Duration)
}
