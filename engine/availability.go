package engine

import (
	"time"

	"rental-backend/models"
)

// DayStatus is the calendar-facing availability state of a single day.
type DayStatus string

const (
	StatusAvailable DayStatus = "AVAILABLE"
	StatusFull      DayStatus = "FULL"
)

// DayAvailability is one day of the availability calendar for a room type.
type DayAvailability struct {
	Date         time.Time `json:"date"`
	Reserved     int       `json:"reserved"`
	Remaining    int       `json:"remaining"`
	Status       DayStatus `json:"status"`
	IsPeakSeason bool      `json:"is_peak_season"`
}

// ComputeAvailability reports reserved/remaining units and status for
// every day of [rangeStart, rangeEnd). A blackout day always reports
// zero remaining and FULL regardless of reservations.
func ComputeAvailability(rt models.RoomType, rules []models.SeasonRule, reservations []models.Transaction, rangeStart, rangeEnd time.Time) []DayAvailability {
	start, end := DateOnly(rangeStart), DateOnly(rangeEnd)

	days := make([]DayAvailability, 0, NightsBetween(start, end))
	for d := start; d.Before(end); d = d.Add(day) {
		entry := DayAvailability{
			Date:     d,
			Reserved: reservedOn(reservations, d),
		}

		blackout := false
		for _, r := range rules {
			if !r.Matches(d) {
				continue
			}
			if !r.IsAvailable {
				blackout = true
			}
			if r.HasAdjustment() {
				entry.IsPeakSeason = true
			}
		}

		if blackout {
			entry.Remaining = 0
			entry.Status = StatusFull
		} else {
			entry.Remaining = rt.Quota - entry.Reserved
			if entry.Remaining < 0 {
				entry.Remaining = 0
			}
			if entry.Remaining == 0 {
				entry.Status = StatusFull
			} else {
				entry.Status = StatusAvailable
			}
		}

		days = append(days, entry)
	}
	return days
}

// reservedOn sums the units held on night d by reservations that still
// consume quota.
func reservedOn(reservations []models.Transaction, d time.Time) int {
	total := 0
	for _, t := range reservations {
		if t.CountsTowardQuota() && t.CoversNight(d) {
			total += t.Qty
		}
	}
	return total
}
