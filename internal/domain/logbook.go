package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogbookPage is the driver-edited page for one trip day.
// Several pages may exist for the same date, distinguished by Index (1-based).
type LogbookPage struct {
	PageID       int64
	TripID       uuid.UUID
	Date         string
	Index        int
	FormData     map[string]string
	SleeperBerth SleeperBerthOverride
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LogbookUpdate is a partial page edit. Nil fields leave the page untouched.
type LogbookUpdate struct {
	Date         string
	Index        int
	FormData     map[string]string
	SleeperBerth *SleeperBerthOverride
}

// Apply merges form answers key by key and replaces the override if given.
func (p *LogbookPage) Apply(u LogbookUpdate) {
	if p.FormData == nil {
		p.FormData = make(map[string]string, len(u.FormData))
	}
	for k, v := range u.FormData {
		p.FormData[k] = v
	}
	if u.SleeperBerth != nil {
		p.SleeperBerth = *u.SleeperBerth
	}
}

// OverridesByDate picks the override of page 1 for each date.
func OverridesByDate(pages []*LogbookPage) map[string]SleeperBerthOverride {
	out := make(map[string]SleeperBerthOverride, len(pages))
	for _, p := range pages {
		if p.Index != 1 {
			continue
		}
		out[p.Date] = p.SleeperBerth
	}
	return out
}
