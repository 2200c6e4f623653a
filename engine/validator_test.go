package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/models"
)

var validatorNow = date("2025-06-01")

func standardRoomType() models.RoomType {
	return models.RoomType{
		ID:               1,
		BasePrice:        500000,
		Quota:            3,
		CapacityAdults:   2,
		CapacityChildren: 1,
	}
}

func TestValidateStayChecksInOrder(t *testing.T) {
	rt := standardRoomType()

	tests := []struct {
		name    string
		req     StayRequest
		wantErr error
	}{
		{
			name:    "zero night stay",
			req:     StayRequest{CheckIn: date("2025-06-10"), CheckOut: date("2025-06-10"), Qty: 1, Adults: 1},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "check-in in the past",
			req:     StayRequest{CheckIn: date("2025-05-20"), CheckOut: date("2025-05-22"), Qty: 1, Adults: 1},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "zero qty",
			req:     StayRequest{CheckIn: date("2025-06-10"), CheckOut: date("2025-06-12"), Qty: 0, Adults: 1},
			wantErr: ErrQuotaExceeded,
		},
		{
			name:    "qty above quota",
			req:     StayRequest{CheckIn: date("2025-06-10"), CheckOut: date("2025-06-12"), Qty: 4, Adults: 1},
			wantErr: ErrQuotaExceeded,
		},
		{
			name:    "too many adults for one unit",
			req:     StayRequest{CheckIn: date("2025-06-10"), CheckOut: date("2025-06-12"), Qty: 1, Adults: 3},
			wantErr: ErrQuotaExceeded,
		},
		{
			name:    "too many children for one unit",
			req:     StayRequest{CheckIn: date("2025-06-10"), CheckOut: date("2025-06-12"), Qty: 1, Adults: 2, Children: 2},
			wantErr: ErrQuotaExceeded,
		},
		{
			name: "valid request",
			req:  StayRequest{CheckIn: date("2025-06-10"), CheckOut: date("2025-06-12"), Qty: 2, Adults: 2, Children: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStay(tt.req, rt, nil, nil, validatorNow)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStayCapacityIsPerUnit(t *testing.T) {
	// Booking two units does not double the occupancy ceiling: each unit
	// still houses at most capacity adults/children.
	rt := standardRoomType()
	req := StayRequest{
		CheckIn:  date("2025-06-10"),
		CheckOut: date("2025-06-12"),
		Qty:      2,
		Adults:   4,
	}
	assert.ErrorIs(t, ValidateStay(req, rt, nil, nil, validatorNow), ErrQuotaExceeded)
}

func TestValidateStayQuotaExhaustedNight(t *testing.T) {
	rt := standardRoomType()
	reservations := []models.Transaction{
		reservation(1, "2025-06-10", "2025-06-15", 2, models.StatusAccepted),
		reservation(1, "2025-06-12", "2025-06-13", 1, models.StatusWaitingForPayment),
	}

	// 06-12 has all 3 units held; a single-unit request spanning it fails.
	req := StayRequest{CheckIn: date("2025-06-11"), CheckOut: date("2025-06-13"), Qty: 1, Adults: 1}
	err := ValidateStay(req, rt, nil, reservations, validatorNow)
	require.ErrorIs(t, err, ErrQuotaExceeded)

	var qe *QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, date("2025-06-12"), qe.Date)
	assert.Equal(t, 0, qe.Remaining)

	// The same request fits once the overlapping night is avoided.
	req.CheckOut = date("2025-06-12")
	assert.NoError(t, ValidateStay(req, rt, nil, reservations, validatorNow))
}

func TestValidateStayBlackoutBeatsQuota(t *testing.T) {
	// A blacked-out night reports as a blackout even when reservations
	// would also have exhausted it.
	rt := standardRoomType()
	rules := []models.SeasonRule{blackout(1, "2025-06-12", "2025-06-12")}
	reservations := []models.Transaction{
		reservation(1, "2025-06-12", "2025-06-13", 3, models.StatusAccepted),
	}

	req := StayRequest{CheckIn: date("2025-06-11"), CheckOut: date("2025-06-14"), Qty: 1, Adults: 1}
	err := ValidateStay(req, rt, rules, reservations, validatorNow)
	require.ErrorIs(t, err, ErrBlackout)

	var be *BlackoutError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, date("2025-06-12"), be.Date)
}

func TestValidateStayCancelledDoesNotBlock(t *testing.T) {
	rt := standardRoomType()
	reservations := []models.Transaction{
		reservation(1, "2025-06-10", "2025-06-15", 3, models.StatusCancelled),
	}

	req := StayRequest{CheckIn: date("2025-06-10"), CheckOut: date("2025-06-15"), Qty: 3, Adults: 2}
	assert.NoError(t, ValidateStay(req, rt, nil, reservations, validatorNow))
}

func TestValidateStayCheckoutDayIgnored(t *testing.T) {
	// An existing reservation checking out on 06-12 does not hold that
	// night, so a new stay starting 06-12 fits.
	rt := standardRoomType()
	reservations := []models.Transaction{
		reservation(1, "2025-06-10", "2025-06-12", 3, models.StatusAccepted),
	}

	req := StayRequest{CheckIn: date("2025-06-12"), CheckOut: date("2025-06-14"), Qty: 3, Adults: 2}
	assert.NoError(t, ValidateStay(req, rt, nil, reservations, validatorNow))
}
