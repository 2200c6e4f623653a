package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func rule(id uint, start, end string, kind models.AdjustmentKind, pct float64, nominal int64) models.SeasonRule {
	return models.SeasonRule{
		ID:          id,
		StartDate:   date(start),
		EndDate:     date(end),
		IsAvailable: true,
		Kind:        kind,
		Percent:     pct,
		Nominal:     nominal,
	}
}

func blackout(id uint, start, end string) models.SeasonRule {
	r := rule(id, start, end, models.AdjustmentNone, 0, 0)
	r.IsAvailable = false
	return r
}

func TestComputeStayNoRuleBaseline(t *testing.T) {
	quote, err := ComputeStay(500000, nil, date("2025-06-01"), date("2025-06-04"), 2)
	require.NoError(t, err)

	assert.Len(t, quote.Nights, 3)
	assert.Equal(t, int64(500000*3*2), quote.Total)
	for _, n := range quote.Nights {
		assert.Equal(t, int64(500000), n.UnitPrice)
		assert.Equal(t, int64(1000000), n.LineTotal)
		assert.False(t, n.IsPeak)
	}
}

func TestComputeStayCheckoutExclusive(t *testing.T) {
	quote, err := ComputeStay(100000, nil, date("2025-06-01"), date("2025-06-04"), 1)
	require.NoError(t, err)

	require.Len(t, quote.Nights, 3)
	assert.Equal(t, date("2025-06-01"), quote.Nights[0].Date)
	assert.Equal(t, date("2025-06-02"), quote.Nights[1].Date)
	assert.Equal(t, date("2025-06-03"), quote.Nights[2].Date)
}

func TestComputeStayInvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{name: "zero nights", checkIn: "2025-06-01", checkOut: "2025-06-01"},
		{name: "reversed", checkIn: "2025-06-05", checkOut: "2025-06-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeStay(100000, nil, date(tt.checkIn), date(tt.checkOut), 1)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestComputeStaySingleFullCoverageRule(t *testing.T) {
	rules := []models.SeasonRule{
		rule(1, "2025-06-01", "2025-06-30", models.AdjustmentPercent, 20, 0),
	}

	quote, err := ComputeStay(500000, rules, date("2025-06-10"), date("2025-06-13"), 1)
	require.NoError(t, err)

	require.Len(t, quote.Nights, 3)
	for _, n := range quote.Nights {
		assert.Equal(t, int64(600000), n.UnitPrice)
		assert.True(t, n.IsPeak)
	}
	assert.Equal(t, int64(1800000), quote.Total)
}

func TestComputeStayPercentRoundsHalfUp(t *testing.T) {
	tests := []struct {
		name  string
		base  int64
		pct   float64
		want  int64
	}{
		{name: "exact", base: 100000, pct: 10, want: 110000},
		{name: "half rounds up", base: 5, pct: 10, want: 6},      // 5.5 -> 6
		{name: "below half rounds down", base: 4, pct: 10, want: 4}, // 4.4 -> 4
		{name: "above half rounds up", base: 7, pct: 10, want: 8},   // 7.7 -> 8
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := []models.SeasonRule{
				rule(1, "2025-06-01", "2025-06-30", models.AdjustmentPercent, tt.pct, 0),
			}
			quote, err := ComputeStay(tt.base, rules, date("2025-06-10"), date("2025-06-11"), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, quote.Nights[0].UnitPrice)
		})
	}
}

func TestComputeStayNominalAdjustment(t *testing.T) {
	rules := []models.SeasonRule{
		rule(1, "2025-06-01", "2025-06-30", models.AdjustmentNominal, 0, 75000),
	}

	quote, err := ComputeStay(500000, rules, date("2025-06-10"), date("2025-06-12"), 1)
	require.NoError(t, err)

	for _, n := range quote.Nights {
		assert.Equal(t, int64(575000), n.UnitPrice)
		assert.True(t, n.IsPeak)
	}
}

func TestComputeStayBlackoutFailsWholeStay(t *testing.T) {
	rules := []models.SeasonRule{
		rule(1, "2025-06-01", "2025-06-30", models.AdjustmentPercent, 10, 0),
		blackout(2, "2025-06-12", "2025-06-12"),
	}

	_, err := ComputeStay(500000, rules, date("2025-06-10"), date("2025-06-14"), 1)
	require.ErrorIs(t, err, ErrBlackout)

	var be *BlackoutError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, date("2025-06-12"), be.Date)
}

func TestComputeStayOverlapShortestRangeWins(t *testing.T) {
	// Broad 10-day +10% season with a 2-day nominal override inside it.
	rules := []models.SeasonRule{
		rule(1, "2025-06-01", "2025-06-10", models.AdjustmentPercent, 10, 0),
		rule(2, "2025-06-04", "2025-06-05", models.AdjustmentNominal, 0, 50000),
	}

	quote, err := ComputeStay(500000, rules, date("2025-06-03"), date("2025-06-07"), 1)
	require.NoError(t, err)
	require.Len(t, quote.Nights, 4)

	assert.Equal(t, int64(550000), quote.Nights[0].UnitPrice) // 06-03: +10%
	assert.Equal(t, int64(550000), quote.Nights[1].UnitPrice) // 06-04: nominal override
	assert.Equal(t, int64(550000), quote.Nights[2].UnitPrice) // 06-05: nominal override
	assert.Equal(t, int64(550000), quote.Nights[3].UnitPrice) // 06-06: +10%

	// Same spans, different adjustments: make the override visible.
	rules[1].Nominal = 123000
	quote, err = ComputeStay(500000, rules, date("2025-06-03"), date("2025-06-07"), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(550000), quote.Nights[0].UnitPrice)
	assert.Equal(t, int64(623000), quote.Nights[1].UnitPrice)
	assert.Equal(t, int64(623000), quote.Nights[2].UnitPrice)
	assert.Equal(t, int64(550000), quote.Nights[3].UnitPrice)
}

func TestComputeStayEqualSpanNewestIDWins(t *testing.T) {
	rules := []models.SeasonRule{
		rule(7, "2025-06-01", "2025-06-05", models.AdjustmentPercent, 10, 0),
		rule(9, "2025-06-01", "2025-06-05", models.AdjustmentPercent, 25, 0),
	}

	quote, err := ComputeStay(400000, rules, date("2025-06-02"), date("2025-06-03"), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(500000), quote.Nights[0].UnitPrice)
}

func TestComputeStayPlainAvailableRuleDoesNotPrice(t *testing.T) {
	// An available rule without adjustment permits booking but leaves the
	// base price and peak flag untouched.
	rules := []models.SeasonRule{
		rule(1, "2025-06-01", "2025-06-30", models.AdjustmentNone, 0, 0),
	}

	quote, err := ComputeStay(500000, rules, date("2025-06-10"), date("2025-06-11"), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(500000), quote.Nights[0].UnitPrice)
	assert.False(t, quote.Nights[0].IsPeak)
}

func TestComputeStayQtyMultipliesLines(t *testing.T) {
	rules := []models.SeasonRule{
		rule(1, "2025-06-01", "2025-06-30", models.AdjustmentNominal, 0, 100000),
	}

	quote, err := ComputeStay(300000, rules, date("2025-06-10"), date("2025-06-12"), 3)
	require.NoError(t, err)

	for _, n := range quote.Nights {
		assert.Equal(t, int64(400000), n.UnitPrice)
		assert.Equal(t, int64(1200000), n.LineTotal)
	}
	assert.Equal(t, int64(2400000), quote.Total)
}
