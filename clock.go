package sunglide

import "time"

// Today returns midnight of the current date in tz (UTC when nil).
func Today(tz *time.Location) time.Time {
	y, m, d := Now(tz).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, zone(tz))
}

// Now returns the current instant in tz (UTC when nil).
func Now(tz *time.Location) time.Time {
	return time.Now().In(zone(tz))
}
