package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rental-backend/engine"
	"rental-backend/services"
	"rental-backend/utils"
)

// respondComputeError maps engine and service errors to HTTP responses.
// Typed engine rejections become client errors; anything unexpected is
// logged and returned as a retryable 500.
func respondComputeError(c *gin.Context, err error) {
	var be *engine.BlackoutError
	var qe *engine.QuotaError

	switch {
	case errors.Is(err, engine.ErrInvalidRange):
		utils.JSONError(c, http.StatusBadRequest, "invalid stay range")
	case errors.As(err, &be):
		utils.JSONError(c, http.StatusConflict, be.Error())
	case errors.As(err, &qe):
		utils.JSONError(c, http.StatusConflict, qe.Error())
	case errors.Is(err, services.ErrRoomTypeNotFound):
		utils.JSONError(c, http.StatusNotFound, "room type not found")
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "user not found")
	default:
		logrus.Errorf("booking computation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "booking failed, please retry")
	}
}
