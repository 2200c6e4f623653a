package engine

import "time"

const day = 24 * time.Hour

// DateOnly truncates t to midnight UTC. All engine math is calendar-day
// granular; time zone normalization is the caller's concern.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NightsBetween counts the priced nights of a stay: every day from
// checkIn inclusive to checkOut exclusive.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)) / day)
}
