package services

import (
	"errors"
	"hos-recap-service/internal/domain"
	"testing"
)

func TestValidateDays(t *testing.T) {
	valid := domain.DailyLog{
		Date:     "2025-03-03",
		Segments: []domain.DutySegment{seg(domain.StatusDriving, "2025-03-03T06:00:00", "2025-03-03T08:00:00")},
	}

	tests := []struct {
		name      string
		days      []domain.DailyLog
		wantField string
		wantDay   int
	}{
		{name: "valid", days: []domain.DailyLog{valid}},
		{name: "no days", days: nil},
		{
			name:      "missing date",
			days:      []domain.DailyLog{valid, {Segments: valid.Segments}},
			wantField: "date",
			wantDay:   1,
		},
		{
			name:      "bad date",
			days:      []domain.DailyLog{{Date: "03/03/2025"}},
			wantField: "date",
		},
		{
			name: "unknown status",
			days: []domain.DailyLog{{
				Date:     "2025-03-03",
				Segments: []domain.DutySegment{valid.Segments[0], seg("YARD", "2025-03-03T08:00:00", "2025-03-03T09:00:00")},
			}},
			wantField: "segments[1].status",
		},
		{
			name: "missing end",
			days: []domain.DailyLog{{
				Date:     "2025-03-03",
				Segments: []domain.DutySegment{seg(domain.StatusOnDuty, "2025-03-03T08:00:00", "")},
			}},
			wantField: "segments[0].end",
		},
		{
			name: "unknown remark type",
			days: []domain.DailyLog{{
				Date:         "2025-03-03",
				RemarkEvents: []domain.RemarkEvent{{Start: "2025-03-03T08:00:00", Type: "nap"}},
			}},
			wantField: "remark_events[0].type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDays(tt.days)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *domain.ValidationError", err)
			}
			if ve.Field != tt.wantField || ve.DayIndex != tt.wantDay {
				t.Fatalf("field/day = %s/%d, want %s/%d", ve.Field, ve.DayIndex, tt.wantField, tt.wantDay)
			}
			if !Error.Has(err) {
				t.Fatalf("error %v is not of class hos", err)
			}
		})
	}
}
