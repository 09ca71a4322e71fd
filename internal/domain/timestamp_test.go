package domain

import (
	"math"
	"testing"
	"time"
)

func TestTimestampWallClock(t *testing.T) {
	tests := []struct {
		in       Timestamp
		wantDate string
		wantHrs  float64
		wantOK   bool
	}{
		{"2025-03-03T07:30:00", "2025-03-03", 7.5, true},
		{"2025-03-03T07:30:00-07:00", "2025-03-03", 7.5, true},
		{"2025-03-03T23:59:30.5Z", "2025-03-03", 23 + 59.0/60 + 30.5/3600, true},
		{"2025-03-03 06:15", "2025-03-03", 6.25, true},
		{"14:45", "", 14.75, true},
		{"2025-03-03T25:00:00", "2025-03-03", 0, false},
		{"yesterday", "", 0, false},
		{"", "", 0, false},
	}

	for _, tt := range tests {
		date, secs, ok := tt.in.WallClock()
		if date != tt.wantDate || ok != tt.wantOK || math.Abs(secs/3600-tt.wantHrs) > 1e-9 {
			t.Errorf("WallClock(%q) = %q, %v, %v; want %q, %v, %v",
				tt.in, date, secs/3600, ok, tt.wantDate, tt.wantHrs, tt.wantOK)
		}
	}
}

func TestTimestampHoursFrom(t *testing.T) {
	tests := []struct {
		in   Timestamp
		day  string
		want float64
	}{
		{"2025-03-03T10:00:00", "2025-03-03", 10},
		{"2025-03-04T02:00:00", "2025-03-03", 26},
		{"2025-03-02T22:00:00", "2025-03-03", -2},
		{"10:00", "2025-03-03", 10},
		{"2025-03-04T02:00:00", "", 2},
	}
	for _, tt := range tests {
		if got := tt.in.HoursFrom(tt.day); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%q.HoursFrom(%q) = %v, want %v", tt.in, tt.day, got, tt.want)
		}
	}
}

func TestTimestampOfIgnoresZone(t *testing.T) {
	loc := time.FixedZone("MST", -7*3600)
	ts := TimestampOf(time.Date(2025, 3, 3, 9, 5, 0, 0, loc))

	if ts != "2025-03-03T09:05:00" {
		t.Fatalf("TimestampOf = %q, want 2025-03-03T09:05:00", ts)
	}
	if got := ts.HoursSinceMidnight(); math.Abs(got-(9+5.0/60)) > 1e-9 {
		t.Fatalf("HoursSinceMidnight = %v", got)
	}
}
