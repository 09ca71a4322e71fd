package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SleeperBerthOverride is the driver's election to end the logged day in the
// sleeper berth from Hour (hours since midnight) onward.
type SleeperBerthOverride struct {
	Active bool
	Hour   float64
}

// NewSleeperBerthOverride builds an override from an "HH:MM" form value.
// Absent or unparsable times are treated as 00:00.
func NewSleeperBerthOverride(active bool, hhmm string) SleeperBerthOverride {
	h, err := ParseClock(hhmm)
	if err != nil {
		h = 0
	}
	return SleeperBerthOverride{Active: active, Hour: h}
}

// Clock renders the override hour back into "HH:MM".
func (o SleeperBerthOverride) Clock() string {
	mins := int(o.Hour*60 + 0.5)
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// ParseClock parses a 24-hour "HH:MM" into hours. "24:00" is accepted.
func ParseClock(s string) (float64, error) {
	s = strings.TrimSpace(s)
	hs, ms, found := strings.Cut(s, ":")
	if !found || !twoDigits(hs) || !twoDigits(ms) {
		return 0, fmt.Errorf("parse clock: %q is not HH:MM", s)
	}

	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, fmt.Errorf("parse clock: hour %q: %w", hs, err)
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return 0, fmt.Errorf("parse clock: minute %q: %w", ms, err)
	}

	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("parse clock: %q out of range", s)
	}

	return float64(h) + float64(m)/60, nil
}

func twoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}
