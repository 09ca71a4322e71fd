package services

// ApportionMiles splits totalMiles across days in proportion to each day's
// driving hours.
//
// When the trip has no driving hours at all, every day reports totalMiles
// unchanged instead of dividing by zero.
func ApportionMiles(totalMiles float64, drivingHoursPerDay []float64) []float64 {
	out := make([]float64, len(drivingHoursPerDay))

	sum := 0.0
	for _, h := range drivingHoursPerDay {
		sum += nonNegative(h)
	}

	if sum <= 0 {
		for i := range out {
			out[i] = totalMiles
		}
		return out
	}

	for i, h := range drivingHoursPerDay {
		out[i] = totalMiles * nonNegative(h) / sum
	}
	return out
}
