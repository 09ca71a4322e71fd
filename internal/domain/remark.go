package domain

import (
	"fmt"
	"strings"
	"time"
)

type RemarkType string

const (
	RemarkPickup   RemarkType = "pickup"
	RemarkDropoff  RemarkType = "dropoff"
	RemarkFuel     RemarkType = "fuel"
	RemarkBreak    RemarkType = "break"
	RemarkEndOfDay RemarkType = "end_of_day"
	RemarkRestart  RemarkType = "restart"
	RemarkDrive    RemarkType = "drive"
)

func ParseRemarkType(s string) (RemarkType, error) {
	t := RemarkType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case RemarkPickup, RemarkDropoff, RemarkFuel, RemarkBreak, RemarkEndOfDay, RemarkRestart, RemarkDrive:
		return t, nil
	}
	return "", fmt.Errorf("parse remark type: unknown type %q", s)
}

// DefaultDuration is the span a remark of this type covers when the planner
// did not record an end.
func (t RemarkType) DefaultDuration() time.Duration {
	switch t {
	case RemarkPickup, RemarkDropoff:
		return time.Hour
	case RemarkFuel, RemarkBreak:
		return 30 * time.Minute
	case RemarkEndOfDay:
		return 10 * time.Hour
	case RemarkRestart:
		return 34 * time.Hour
	}
	return 0
}

// Annotation for the remarks strip of a log sheet.
// It is not part of the duty partition.
type RemarkEvent struct {
	Start    Timestamp
	End      *Timestamp
	Type     RemarkType
	Location string
	Reason   string
}
