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

type PropertyPayload struct {
	TenantID uint   `json:"tenant_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	City     string `json:"city" binding:"required"`
	Address  string `json:"address"`
}

type PropertyController struct {
	PropertySvc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{PropertySvc: svc}
}

// GET /api/properties
func (pc *PropertyController) GetProperties(c *gin.Context) {
	list, err := pc.PropertySvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list properties")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/properties/:id
func (pc *PropertyController) GetProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}

	prop, err := pc.PropertySvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load property")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, prop)
}

// POST /api/properties
func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var payload PropertyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	prop := models.Property{
		TenantID: payload.TenantID,
		Name:     payload.Name,
		City:     payload.City,
		Address:  payload.Address,
	}
	if err := pc.PropertySvc.Create(&prop); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create property")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, prop)
}

// DELETE /api/properties/:id
func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}

	if err := pc.PropertySvc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete property")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
