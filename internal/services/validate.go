package services

import (
	"fmt"
	"hos-recap-service/internal/domain"
	"strings"
	"time"
)

// ValidateDays rejects structurally invalid planner output. Only missing or
// unusable required fields fail here. Odd timestamps and degenerate intervals
// are absorbed later by Normalize.
func ValidateDays(days []domain.DailyLog) error {
	for i, d := range days {
		if err := validateDay(i, d); err != nil {
			return Error.Wrap(err)
		}
	}
	return nil
}

func validateDay(idx int, d domain.DailyLog) *domain.ValidationError {
	fail := func(field, reason string) *domain.ValidationError {
		return &domain.ValidationError{DayIndex: idx, Date: d.Date, Field: field, Reason: reason}
	}

	if strings.TrimSpace(d.Date) == "" {
		return fail("date", "is required")
	}
	if _, err := time.Parse(time.DateOnly, d.Date); err != nil {
		return fail("date", "must be YYYY-MM-DD")
	}

	for j, seg := range d.Segments {
		if !seg.Status.Valid() {
			return fail(field("segments", j, "status"), fmt.Sprintf("unknown duty status %q", seg.Status))
		}
		if strings.TrimSpace(string(seg.Start)) == "" {
			return fail(field("segments", j, "start"), "is required")
		}
		if strings.TrimSpace(string(seg.End)) == "" {
			return fail(field("segments", j, "end"), "is required")
		}
	}

	for j, ev := range d.RemarkEvents {
		if _, err := domain.ParseRemarkType(string(ev.Type)); err != nil {
			return fail(field("remark_events", j, "type"), fmt.Sprintf("unknown remark type %q", ev.Type))
		}
		if strings.TrimSpace(string(ev.Start)) == "" {
			return fail(field("remark_events", j, "start"), "is required")
		}
	}

	return nil
}

func field(list string, idx int, name string) string {
	return fmt.Sprintf("%s[%d].%s", list, idx, name)
}
