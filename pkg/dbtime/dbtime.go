package dbtime

import "time"

// Timestamps are persisted in UTC so version rows and live rows compare
// consistently regardless of the host timezone.

func DBNow() time.Time {
	return DBTime(time.Now())
}

func DBTime(t time.Time) time.Time {
	return t.UTC()
}
