package engine

import (
	"time"

	"rental-backend/models"
)

// StayRequest is the single input to both validation and pricing. It is
// ephemeral: discarded once the resulting transaction is created or
// rejected.
type StayRequest struct {
	RoomTypeID uint
	CheckIn    time.Time
	CheckOut   time.Time
	Qty        int
	Adults     int
	Children   int
}

// ValidateStay runs the pre-booking checks in order, first failure
// wins: range validity, qty against quota, occupancy against per-unit
// capacity, then a night-by-night walk rejecting blackouts and nights
// with fewer than qty units remaining. reservations must exclude the
// request being validated. The caller is responsible for invoking this
// inside the same transaction boundary that persists the reservation.
func ValidateStay(req StayRequest, rt models.RoomType, rules []models.SeasonRule, reservations []models.Transaction, now time.Time) error {
	ci, co := DateOnly(req.CheckIn), DateOnly(req.CheckOut)
	if !ci.Before(co) {
		return ErrInvalidRange
	}
	if ci.Before(DateOnly(now)) {
		return ErrInvalidRange
	}

	if req.Qty < 1 || req.Qty > rt.Quota {
		return &QuotaError{Requested: req.Qty, Remaining: -1}
	}
	if req.Adults > rt.CapacityAdults || req.Children > rt.CapacityChildren {
		return &QuotaError{Requested: req.Adults + req.Children, Remaining: -1}
	}

	for d := ci; d.Before(co); d = d.Add(day) {
		remaining := rt.Quota
		for _, r := range rules {
			if r.Matches(d) && !r.IsAvailable {
				return &BlackoutError{Date: d}
			}
		}
		remaining -= reservedOn(reservations, d)
		if remaining < req.Qty {
			if remaining < 0 {
				remaining = 0
			}
			return &QuotaError{Date: d, Requested: req.Qty, Remaining: remaining}
		}
	}
	return nil
}
