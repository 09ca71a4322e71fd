package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a serialized instant whose date and clock fields are taken
// literally. Any zone designator or offset in the text is ignored.
type Timestamp string

// Matches "YYYY-MM-DD[T ]HH:MM[:SS[.fff]]" with anything (offset, Z) after it.
var wallClockPattern = regexp.MustCompile(
	`^\s*(?:(\d{4})-(\d{2})-(\d{2})[T ])?(\d{1,2}):(\d{2})(?::(\d{2})(?:[.,](\d+))?)?`,
)

// TimestampOf renders t with its own wall clock, dropping the zone.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.Format("2006-01-02T15:04:05"))
}

// WallClock returns the literal calendar date ("" if absent or invalid) and
// the seconds since midnight of the clock fields. Unreadable clock fields
// yield 0 seconds and ok=false.
func (ts Timestamp) WallClock() (date string, seconds float64, ok bool) {
	m := wallClockPattern.FindStringSubmatch(string(ts))
	if m == nil {
		return "", 0, false
	}

	if m[1] != "" {
		date = m[1] + "-" + m[2] + "-" + m[3]
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			date = ""
		}
	}

	h, _ := strconv.Atoi(m[4])
	mi, _ := strconv.Atoi(m[5])
	sec := 0.0
	if m[6] != "" {
		s, _ := strconv.Atoi(m[6])
		sec = float64(s)
		if m[7] != "" {
			frac, err := strconv.ParseFloat("0."+m[7], 64)
			if err == nil {
				sec += frac
			}
		}
	}
	if h > 23 || mi > 59 || sec >= 60 {
		return date, 0, false
	}

	return date, float64(h*3600+mi*60) + sec, true
}

// HoursSinceMidnight reads the clock fields only. Malformed input is 0.
func (ts Timestamp) HoursSinceMidnight() float64 {
	_, secs, _ := ts.WallClock()
	return secs / 3600
}

// HoursFrom measures the timestamp against midnight of day (YYYY-MM-DD).
// A literal date later or earlier than day shifts the result by whole days,
// so a segment ending on the next calendar day reports >= 24. When either
// date is unreadable the clock hours are returned unshifted.
func (ts Timestamp) HoursFrom(day string) float64 {
	date, secs, _ := ts.WallClock()
	hours := secs / 3600

	if date == "" || day == "" || date == day {
		return hours
	}
	d0, err := time.Parse(time.DateOnly, strings.TrimSpace(day))
	if err != nil {
		return hours
	}
	d1, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return hours
	}

	days := d1.Sub(d0).Hours() / 24
	return days*24 + hours
}
