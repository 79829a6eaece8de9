package dateutil

import (
	"time"
)

// AddMonths adds calendar months to a date. When the source day does not
// exist in the target month the result is clamped to that month's last day,
// so Jan 31 + 1 month is Feb 28 (or 29), never early March.
func AddMonths(date time.Time, months int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m, 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	target := first.AddDate(0, months, 0)
	if last := DaysInMonth(target.Year(), target.Month()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// MonthsBetween counts whole calendar months from one date to another.
// A partial final month is not counted.
func MonthsBetween(fromDate, toDate time.Time) int {
	if toDate.Before(fromDate) {
		return -MonthsBetween(toDate, fromDate)
	}
	months := (toDate.Year()-fromDate.Year())*12 + int(toDate.Month()-fromDate.Month())
	if months > 0 && AddMonths(fromDate, months).After(toDate) {
		months--
	}
	return months
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// BeginningOfMonth returns midnight on the first day of the date's month.
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last instant of the date's month.
func EndOfMonth(date time.Time) time.Time {
	return BeginningOfMonth(date).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// YearMonth formats a date as "2006-01".
func YearMonth(date time.Time) string {
	return date.Format("2006-01")
}
