package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rental-backend/services"
	"rental-backend/utils"
)

type ApplySeasonRulePayload struct {
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	IsAvailable *bool    `json:"is_available" binding:"required"`
	Percent     *float64 `json:"percent,omitempty"`
	Nominal     *int64   `json:"nominal,omitempty"`
}

type BulkDeleteRulesPayload struct {
	RuleIDs []uint `json:"rule_ids" binding:"required,min=1"`
}

type SeasonRuleController struct {
	RuleSvc *services.SeasonRuleService
}

func NewSeasonRuleController(svc *services.SeasonRuleService) *SeasonRuleController {
	return &SeasonRuleController{RuleSvc: svc}
}

func (rc *SeasonRuleController) respondRuleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomTypeNotFound):
		utils.JSONError(c, http.StatusNotFound, "room type not found")
	case errors.Is(err, services.ErrRuleNotFound):
		utils.JSONError(c, http.StatusNotFound, "season rule not found")
	case errors.Is(err, services.ErrInvalidRuleRange):
		utils.JSONError(c, http.StatusBadRequest, "end date before start date")
	case errors.Is(err, services.ErrAdjustmentConflict):
		utils.JSONError(c, http.StatusBadRequest, "percent and nominal are mutually exclusive")
	case errors.Is(err, services.ErrInvalidAdjustment):
		utils.JSONError(c, http.StatusBadRequest, "adjustment must be positive")
	default:
		logrus.Errorf("season rule operation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}

// Apply creates one season rule for a room type.
// POST /api/room-types/:id/season-rules
func (rc *SeasonRuleController) Apply(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	var payload ApplySeasonRulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	start, err := utils.ParseDate(payload.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := utils.ParseDate(payload.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rule, err := rc.RuleSvc.Apply(uint(roomTypeID), start, end, *payload.IsAvailable, payload.Percent, payload.Nominal)
	if err != nil {
		rc.respondRuleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rule)
}

// List returns every rule of a room type.
// GET /api/room-types/:id/season-rules
func (rc *SeasonRuleController) List(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	rules, err := rc.RuleSvc.List(uint(roomTypeID))
	if err != nil {
		rc.respondRuleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rules)
}

// Delete removes a single rule.
// DELETE /api/season-rules/:id
func (rc *SeasonRuleController) Delete(c *gin.Context) {
	ruleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rule id")
		return
	}

	if err := rc.RuleSvc.Delete(uint(ruleID)); err != nil {
		rc.respondRuleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": ruleID})
}

// BulkDelete removes several rules of one room type at once.
// POST /api/room-types/:id/season-rules/bulk-delete
func (rc *SeasonRuleController) BulkDelete(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	var payload BulkDeleteRulesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := rc.RuleSvc.BulkDelete(uint(roomTypeID), payload.RuleIDs)
	if err != nil {
		rc.respondRuleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": deleted})
}

// History returns the rule change log, newest first.
// GET /api/room-types/:id/season-rules/history
func (rc *SeasonRuleController) History(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}

	logs, err := rc.RuleSvc.History(uint(roomTypeID))
	if err != nil {
		rc.respondRuleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, logs)
}
