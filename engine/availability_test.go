package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/models"
)

func reservation(roomTypeID uint, checkIn, checkOut string, qty int, status string) models.Transaction {
	return models.Transaction{
		RoomTypeID: roomTypeID,
		CheckIn:    date(checkIn),
		CheckOut:   date(checkOut),
		Qty:        qty,
		Status:     status,
	}
}

func TestComputeAvailabilityEmptyCalendar(t *testing.T) {
	rt := models.RoomType{ID: 1, Quota: 3}

	days := ComputeAvailability(rt, nil, nil, date("2025-06-01"), date("2025-06-04"))
	require.Len(t, days, 3)
	for _, d := range days {
		assert.Equal(t, 0, d.Reserved)
		assert.Equal(t, 3, d.Remaining)
		assert.Equal(t, StatusAvailable, d.Status)
		assert.False(t, d.IsPeakSeason)
	}
}

func TestComputeAvailabilityQuotaExhaustion(t *testing.T) {
	rt := models.RoomType{ID: 1, Quota: 3}
	reservations := []models.Transaction{
		reservation(1, "2025-06-01", "2025-06-03", 2, models.StatusAccepted),
		reservation(1, "2025-06-02", "2025-06-04", 1, models.StatusWaitingForPayment),
	}

	days := ComputeAvailability(rt, nil, reservations, date("2025-06-01"), date("2025-06-04"))
	require.Len(t, days, 3)

	assert.Equal(t, 2, days[0].Reserved)
	assert.Equal(t, 1, days[0].Remaining)
	assert.Equal(t, StatusAvailable, days[0].Status)

	assert.Equal(t, 3, days[1].Reserved)
	assert.Equal(t, 0, days[1].Remaining)
	assert.Equal(t, StatusFull, days[1].Status)

	// 06-03 is the first reservation's checkout day; only the second holds it.
	assert.Equal(t, 1, days[2].Reserved)
	assert.Equal(t, 2, days[2].Remaining)
}

func TestComputeAvailabilityCancelledReleasesQuota(t *testing.T) {
	rt := models.RoomType{ID: 1, Quota: 2}
	reservations := []models.Transaction{
		reservation(1, "2025-06-01", "2025-06-05", 2, models.StatusCancelled),
		reservation(1, "2025-06-01", "2025-06-05", 1, models.StatusWaitingForConfirmation),
	}

	days := ComputeAvailability(rt, nil, reservations, date("2025-06-02"), date("2025-06-03"))
	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Reserved)
	assert.Equal(t, 1, days[0].Remaining)
}

func TestComputeAvailabilityBlackoutAlwaysFull(t *testing.T) {
	rt := models.RoomType{ID: 1, Quota: 5}
	rules := []models.SeasonRule{blackout(1, "2025-06-02", "2025-06-03")}

	days := ComputeAvailability(rt, rules, nil, date("2025-06-01"), date("2025-06-05"))
	require.Len(t, days, 4)

	assert.Equal(t, StatusAvailable, days[0].Status)
	assert.Equal(t, StatusFull, days[1].Status)
	assert.Equal(t, 0, days[1].Remaining)
	assert.Equal(t, StatusFull, days[2].Status)
	assert.Equal(t, StatusAvailable, days[3].Status)
}

func TestComputeAvailabilityPeakFlag(t *testing.T) {
	rt := models.RoomType{ID: 1, Quota: 2}
	rules := []models.SeasonRule{
		rule(1, "2025-06-02", "2025-06-03", models.AdjustmentPercent, 15, 0),
		rule(2, "2025-06-04", "2025-06-04", models.AdjustmentNone, 0, 0),
	}

	days := ComputeAvailability(rt, rules, nil, date("2025-06-01"), date("2025-06-06"))
	require.Len(t, days, 5)

	assert.False(t, days[0].IsPeakSeason)
	assert.True(t, days[1].IsPeakSeason)
	assert.True(t, days[2].IsPeakSeason)
	assert.False(t, days[3].IsPeakSeason) // plain available rule, no adjustment
	assert.False(t, days[4].IsPeakSeason)
}

func TestComputeAvailabilityOverbookedClampsToZero(t *testing.T) {
	rt := models.RoomType{ID: 1, Quota: 1}
	reservations := []models.Transaction{
		reservation(1, "2025-06-01", "2025-06-02", 3, models.StatusAccepted),
	}

	days := ComputeAvailability(rt, nil, reservations, date("2025-06-01"), date("2025-06-02"))
	require.Len(t, days, 1)
	assert.Equal(t, 3, days[0].Reserved)
	assert.Equal(t, 0, days[0].Remaining)
	assert.Equal(t, StatusFull, days[0].Status)
}

func TestComputeAvailabilityMultiMonthRange(t *testing.T) {
	rt := models.RoomType{ID: 1, Quota: 2}

	start, end := date("2025-06-01"), date("2025-09-01")
	days := ComputeAvailability(rt, nil, nil, start, end)

	require.Len(t, days, 92) // June 30 + July 31 + August 31
	assert.Equal(t, start, days[0].Date)
	assert.Equal(t, end.Add(-24*time.Hour), days[len(days)-1].Date)
}
