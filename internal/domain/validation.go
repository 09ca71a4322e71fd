package domain

import "fmt"

// ValidationError reports a structurally invalid day of planner output.
type ValidationError struct {
	DayIndex int
	Date     string
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	day := fmt.Sprintf("day %d", e.DayIndex)
	if e.Date != "" {
		day = fmt.Sprintf("day %d (%s)", e.DayIndex, e.Date)
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid %s: %s", day, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s: %s", day, e.Field, e.Reason)
}
