package domain

// Bar is one normalized interval placed on the 24-hour grid.
// Fractions are of the day; Row follows the fixed OFF, SB, D, ON layout.
type Bar struct {
	Status        DutyStatus
	Row           int
	StartFraction float64
	EndFraction   float64
	// ConnectsPrev is set when a vertical connector joins this bar to the previous one.
	ConnectsPrev bool
}

type RemarkMark struct {
	Event         RemarkEvent
	StartFraction float64
	EndFraction   *float64
}

// DaySheet is everything a log sheet renderer needs for one day.
type DaySheet struct {
	DayIndex    int
	Date        string
	Override    SleeperBerthOverride
	Day         NormalizedDay
	Totals      StatusTotals
	OnDutyHours float64
	Recap       RecapValues
	Miles       float64
	Bars        []Bar
	Remarks     []RemarkMark
}
