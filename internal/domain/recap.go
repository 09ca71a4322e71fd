package domain

const (
	SeventyHourLimit = 70.0
	SixtyHourLimit   = 60.0
)

// RecapValues holds the end-of-day recap for both cycle variants.
//
// A is hours used in the cycle window, B is hours still available tomorrow
// and C is hours used over the longer alternate window.
type RecapValues struct {
	OnDutyToday float64
	SeventyA    float64
	SeventyB    float64
	SeventyC    float64
	SixtyA      float64
	SixtyB      float64
	SixtyC      float64
}
