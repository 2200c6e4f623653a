package engine

import (
	"math"
	"time"

	"rental-backend/models"
)

// Night is one priced night of a stay.
type Night struct {
	Date      time.Time `json:"date"`
	UnitPrice int64     `json:"unit_price"`
	LineTotal int64     `json:"line_total"`
	IsPeak    bool      `json:"is_peak"`
}

// StayQuote is the per-night breakdown and total for a stay of qty units.
type StayQuote struct {
	Nights []Night `json:"nights"`
	Total  int64   `json:"total"`
}

// ComputeStay prices every night of [checkIn, checkOut) for qty units.
// Overlapping rules are resolved per night: the rule with the shortest
// date range wins, ties go to the most recently created id. A blackout
// rule on any night fails the whole stay with ErrBlackout.
func ComputeStay(basePrice int64, rules []models.SeasonRule, checkIn, checkOut time.Time, qty int) (StayQuote, error) {
	ci, co := DateOnly(checkIn), DateOnly(checkOut)
	if !ci.Before(co) {
		return StayQuote{}, ErrInvalidRange
	}

	quote := StayQuote{Nights: make([]Night, 0, NightsBetween(ci, co))}
	for d := ci; d.Before(co); d = d.Add(day) {
		matching := matchingRules(rules, d)
		for _, r := range matching {
			if !r.IsAvailable {
				return StayQuote{}, &BlackoutError{Date: d}
			}
		}

		selected, err := selectRule(matching)
		if err != nil {
			return StayQuote{}, err
		}

		unit := basePrice
		peak := false
		if selected != nil {
			unit = adjustedPrice(basePrice, *selected)
			peak = true
		}

		quote.Nights = append(quote.Nights, Night{
			Date:      d,
			UnitPrice: unit,
			LineTotal: unit * int64(qty),
			IsPeak:    peak,
		})
		quote.Total += unit * int64(qty)
	}
	return quote, nil
}

func matchingRules(rules []models.SeasonRule, d time.Time) []models.SeasonRule {
	var out []models.SeasonRule
	for _, r := range rules {
		if r.Matches(d) {
			out = append(out, r)
		}
	}
	return out
}

// selectRule picks the single adjusted rule to apply on a night, or nil
// when no matching rule carries an adjustment. Precedence: shortest
// span, then highest id.
func selectRule(matching []models.SeasonRule) (*models.SeasonRule, error) {
	var best *models.SeasonRule
	for i := range matching {
		r := &matching[i]
		if !r.HasAdjustment() {
			continue
		}
		switch {
		case best == nil:
			best = r
		case r.SpanDays() < best.SpanDays():
			best = r
		case r.SpanDays() == best.SpanDays() && r.ID > best.ID:
			best = r
		case r.SpanDays() == best.SpanDays() && r.ID == best.ID && r != best:
			return nil, ErrAmbiguousRule
		}
	}
	return best, nil
}

// adjustedPrice applies a rule's adjustment to the base price, rounding
// percentages half-up to the nearest whole currency unit.
func adjustedPrice(basePrice int64, r models.SeasonRule) int64 {
	switch r.Kind {
	case models.AdjustmentNominal:
		return basePrice + r.Nominal
	case models.AdjustmentPercent:
		return int64(math.Floor(float64(basePrice)*(1+r.Percent/100) + 0.5))
	default:
		return basePrice
	}
}
