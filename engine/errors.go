package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange covers check-in >= check-out and stays in the past.
	ErrInvalidRange = errors.New("invalid stay range")

	// ErrBlackout marks a requested night falling inside an unavailable rule.
	ErrBlackout = errors.New("date unavailable")

	// ErrQuotaExceeded marks a request for more units than a night has left,
	// or occupancy over a unit's capacity.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrAmbiguousRule is an internal invariant violation: rule precedence
	// could not pick a single winner. Persisted rules always have distinct
	// ids, so this never reaches a caller.
	ErrAmbiguousRule = errors.New("ambiguous season rule")
)

// BlackoutError carries the first blacked-out night of a rejected stay.
type BlackoutError struct {
	Date time.Time
}

func (e *BlackoutError) Error() string {
	return fmt.Sprintf("date %s is unavailable", e.Date.Format("2006-01-02"))
}

func (e *BlackoutError) Unwrap() error { return ErrBlackout }

// QuotaError carries the first night that cannot hold the requested qty.
// Remaining < 0 means the request failed a capacity check rather than a
// per-night quota check.
type QuotaError struct {
	Date      time.Time
	Requested int
	Remaining int
}

func (e *QuotaError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("requested %d exceeds capacity", e.Requested)
	}
	return fmt.Sprintf("requested %d units but %d remain on %s",
		e.Requested, e.Remaining, e.Date.Format("2006-01-02"))
}

func (e *QuotaError) Unwrap() error { return ErrQuotaExceeded }
