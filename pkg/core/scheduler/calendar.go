package scheduler

import "time"

// daysIn returns the number of days in the given month (month is 1-based)
func daysIn(year, month int) int {
	// Day zero of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// weekdayOf returns the day of week for a day of the month
func weekdayOf(year, month, day int) time.Weekday {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
}

// isSunday reports whether the day is a Sunday
func isSunday(year, month, day int) bool {
	return weekdayOf(year, month, day) == time.Sunday
}

// isFriSatSun reports whether the day falls on the Friday-Sunday window in
// which weekday-only night staff may not take the night shift
func isFriSatSun(year, month, day int) bool {
	switch weekdayOf(year, month, day) {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}

// weekBounds returns the first and last day of the Mon-Sun week containing
// day, clipped to the month
func weekBounds(year, month, day, days int) (first, last int) {
	wd := weekdayOf(year, month, day)
	// Monday-based offset: Monday=0 ... Sunday=6
	offset := (int(wd) + 6) % 7
	first = day - offset
	last = first + 6
	if first < 1 {
		first = 1
	}
	if last > days {
		last = days
	}
	return first, last
}
