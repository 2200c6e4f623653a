package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"
)

type RoomTypePayload struct {
	PropertyID       uint   `json:"property_id" binding:"required"`
	Name             string `json:"name" binding:"required"`
	BasePrice        int64  `json:"base_price" binding:"required,min=0"`
	Quota            int    `json:"quota" binding:"required,min=1"`
	CapacityAdults   int    `json:"capacity_adults" binding:"required,min=1"`
	CapacityChildren int    `json:"capacity_children" binding:"min=0"`
}

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

// GET /api/room-types?property_id=
func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	var propertyID uint
	if raw := c.Query("property_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid property id")
			return
		}
		propertyID = uint(id)
	}

	types, err := rc.RoomTypeSvc.GetAll(propertyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list room types")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

// POST /api/room-types
func (rc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var payload RoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rt := models.RoomType{
		PropertyID:       payload.PropertyID,
		Name:             payload.Name,
		BasePrice:        payload.BasePrice,
		Quota:            payload.Quota,
		CapacityAdults:   payload.CapacityAdults,
		CapacityChildren: payload.CapacityChildren,
	}
	if err := rc.RoomTypeSvc.Create(&rt); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

// PUT /api/room-types/:id
func (rc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	var payload RoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rt := models.RoomType{
		ID:               uint(id),
		Name:             payload.Name,
		BasePrice:        payload.BasePrice,
		Quota:            payload.Quota,
		CapacityAdults:   payload.CapacityAdults,
		CapacityChildren: payload.CapacityChildren,
	}
	if err := rc.RoomTypeSvc.Update(rt); err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

// DELETE /api/room-types/:id
func (rc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	if err := rc.RoomTypeSvc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
