package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rental-backend/services"
	"rental-backend/utils"
)

type QuotePayload struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Qty      int    `json:"qty" binding:"required,min=1"`
}

type CreateTransactionPayload struct {
	UserID     uint   `json:"user_id" binding:"required"`
	RoomTypeID uint   `json:"room_type_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	Qty        int    `json:"qty" binding:"required,min=1"`
	Adults     int    `json:"adults" binding:"required,min=1"`
	Children   int    `json:"children" binding:"min=0"`
}

type UpdateStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=WAITING_FOR_PAYMENT WAITING_FOR_CONFIRMATION ACCEPTED CANCELLED"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// Quote prices a stay for preview without reserving anything.
// POST /api/room-types/:id/quote
func (bc *BookingController) Quote(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	var payload QuotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := bc.BookingSvc.Quote(uint(roomTypeID), checkIn, checkOut, payload.Qty)
	if err != nil {
		respondComputeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}

// CreateTransaction validates, prices and persists a reservation.
// POST /api/transactions
func (bc *BookingController) CreateTransaction(c *gin.Context) {
	var payload CreateTransactionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	trx, err := bc.BookingSvc.Book(services.BookRequest{
		UserID:     payload.UserID,
		RoomTypeID: payload.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Qty:        payload.Qty,
		Adults:     payload.Adults,
		Children:   payload.Children,
	})
	if err != nil {
		respondComputeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, trx)
}

// GetTransactions lists reservations for dashboards.
// GET /api/transactions?status=
func (bc *BookingController) GetTransactions(c *gin.Context) {
	list, err := bc.BookingSvc.GetAll(c.Query("status"))
	if err != nil {
		respondComputeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetReservations lists a room type's reservations.
// GET /api/room-types/:id/reservations?status=
func (bc *BookingController) GetReservations(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	list, err := bc.BookingSvc.GetByRoomType(uint(roomTypeID), c.Query("status"))
	if err != nil {
		respondComputeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetTransaction loads one reservation by reference code.
// GET /api/transactions/:ref
func (bc *BookingController) GetTransaction(c *gin.Context) {
	trx, err := bc.BookingSvc.GetByReference(c.Param("ref"))
	if err != nil {
		if err == services.ErrTransactionNotFound {
			utils.JSONError(c, http.StatusNotFound, "transaction not found")
			return
		}
		respondComputeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, trx)
}

// UpdateTransactionStatus applies a lifecycle transition.
// PATCH /api/transactions/:ref/status
func (bc *BookingController) UpdateTransactionStatus(c *gin.Context) {
	var payload UpdateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	trx, err := bc.BookingSvc.UpdateStatus(c.Param("ref"), payload.Status)
	if err != nil {
		switch err {
		case services.ErrTransactionNotFound:
			utils.JSONError(c, http.StatusNotFound, "transaction not found")
		case services.ErrInvalidStatusChange:
			utils.JSONError(c, http.StatusConflict, "status transition not allowed")
		default:
			respondComputeError(c, err)
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, trx)
}
