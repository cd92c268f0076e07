package domain

import "time"

// MonthBucket maps a point in time to its YYYYMM reporting bucket.
// Buckets sort chronologically and group records by calendar month.
func MonthBucket(t time.Time) int {
	return t.Year()*100 + int(t.Month())
}
