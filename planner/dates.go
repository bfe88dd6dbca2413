package planner

import "time"

const (
	dateLayout = "2006-01-02"

	// 12306 only sells tickets this far ahead.
	trainBookingWindowDays = 14
)

// AdjustedTrainDate clamps a requested date to the rail booking
// window so far-future queries still return a price signal. The
// returned date is what actually goes to the provider; callers
// surface the substitution to the user.
func AdjustedTrainDate(requested string, now time.Time, maxOffsetDays int) string {
	if maxOffsetDays <= 0 {
		maxOffsetDays = trainBookingWindowDays
	}
	target, err := time.ParseInLocation(dateLayout, requested, now.Location())
	if err != nil {
		return requested
	}
	max := now.AddDate(0, 0, maxOffsetDays)
	if target.After(max) {
		return max.Format(dateLayout)
	}
	return requested
}
