// Package workdays prices a date range in business days, the unit all
// leave quotas are counted in.
package workdays

import "time"

// Between counts the business days (Mon-Fri) in the inclusive range
// [start, end]. A reversed range yields 0, which callers treat as an
// invalid request rather than an error.
func Between(start, end time.Time) int {
	if start.After(end) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
