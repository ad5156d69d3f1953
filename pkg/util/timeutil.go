package util

import "time"

// Now exposes time.Now for deterministic testing. The aggregation pipeline
// buckets activity by local calendar date, so the local clock is the right
// one here, not UTC.
func Now() time.Time {
	return time.Now()
}
