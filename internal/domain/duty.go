package domain

import (
	"fmt"
	"strings"
)

// DutyStatus is one of the four logged duty classifications.
type DutyStatus string

const (
	StatusOff     DutyStatus = "OFF"
	StatusSleeper DutyStatus = "SB"
	StatusDriving DutyStatus = "D"
	StatusOnDuty  DutyStatus = "ON"
)

// Statuses lists every duty status in grid row order.
var Statuses = []DutyStatus{StatusOff, StatusSleeper, StatusDriving, StatusOnDuty}

func (s DutyStatus) Valid() bool {
	switch s {
	case StatusOff, StatusSleeper, StatusDriving, StatusOnDuty:
		return true
	}
	return false
}

// ParseDutyStatus accepts the short codes case-insensitively.
func ParseDutyStatus(s string) (DutyStatus, error) {
	st := DutyStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("parse duty status: unknown status %q", s)
	}
	return st, nil
}

// A single raw duty interval as produced by the trip planner.
// Start and End are read with their literal wall-clock fields.
type DutySegment struct {
	Status DutyStatus
	Start  Timestamp
	End    Timestamp
}

// One calendar day of planner output.
// DailyLog values are read-only input to the engine.
type DailyLog struct {
	Date         string
	Segments     []DutySegment
	RemarkEvents []RemarkEvent
}

// A normalized interval measured in hours since the day's midnight.
type Interval struct {
	Status DutyStatus
	Start  float64
	End    float64
}

func (iv Interval) Hours() float64 { return iv.End - iv.Start }

// NormalizedDay is an ordered, contiguous partition of [0, 24) hours.
type NormalizedDay struct {
	Date      string
	Intervals []Interval
}

// StatusTotals maps every duty status to elapsed hours.
type StatusTotals map[DutyStatus]float64

// OnDuty returns driving plus on-duty-not-driving hours.
func (t StatusTotals) OnDuty() float64 { return t[StatusDriving] + t[StatusOnDuty] }

// Sum returns the hours across all statuses.
func (t StatusTotals) Sum() float64 {
	total := 0.0
	for _, s := range Statuses {
		total += t[s]
	}
	return total
}
