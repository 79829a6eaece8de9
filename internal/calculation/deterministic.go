package calculation

import "time"

// Clock supplies the plan generation timestamp. Tests inject FixedClock for
// reproducible debt-free dates.
type Clock func() time.Time

// SystemClock reads the wall clock in UTC.
func SystemClock() time.Time { return time.Now().UTC() }

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
