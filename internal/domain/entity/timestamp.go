package entity

import "time"

// Now returns the current UTC time at millisecond precision, the precision
// the document store keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NextTimestamp returns now, or prev plus one millisecond when now does not
// come after prev, so successive stamps on one record strictly increase.
func NextTimestamp(prev, now time.Time) time.Time {
	now = now.UTC().Truncate(time.Millisecond)
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}
