package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rental-backend/services"
	"rental-backend/utils"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// Calendar reports per-day reserved/remaining/status for a date range,
// consumed by the tenant pricing calendar and the occupancy report.
// GET /api/room-types/:id/availability?start=&end=
func (ac *AvailabilityController) Calendar(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	days, err := ac.AvailabilitySvc.Calendar(uint(roomTypeID), start, end)
	if err != nil {
		respondComputeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, days)
}
