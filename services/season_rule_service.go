package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rental-backend/engine"
	"rental-backend/models"
)

var (
	ErrRoomTypeNotFound   = errors.New("room_type_not_found")
	ErrRuleNotFound       = errors.New("rule_not_found")
	ErrInvalidRuleRange   = errors.New("invalid_rule_range")
	ErrAdjustmentConflict = errors.New("adjustment_conflict")
	ErrInvalidAdjustment  = errors.New("invalid_adjustment")
)

// SeasonRuleService owns the date-range pricing/availability rules of a
// room type. Overlapping ranges are accepted by design; the engine
// resolves precedence at computation time.
type SeasonRuleService struct {
	DB *gorm.DB
}

func NewSeasonRuleService(db *gorm.DB) *SeasonRuleService {
	return &SeasonRuleService{DB: db}
}

// buildRule validates one apply-action payload and produces the rule to
// persist. Percentage and nominal adjustments are mutually exclusive;
// both must be positive when present.
func buildRule(roomTypeID uint, start, end time.Time, isAvailable bool, percent *float64, nominal *int64) (models.SeasonRule, error) {
	start, end = engine.DateOnly(start), engine.DateOnly(end)
	if end.Before(start) {
		return models.SeasonRule{}, ErrInvalidRuleRange
	}
	if percent != nil && nominal != nil {
		return models.SeasonRule{}, ErrAdjustmentConflict
	}

	rule := models.SeasonRule{
		RoomTypeID:  roomTypeID,
		StartDate:   start,
		EndDate:     end,
		IsAvailable: isAvailable,
		Kind:        models.AdjustmentNone,
	}
	switch {
	case percent != nil:
		if *percent <= 0 {
			return models.SeasonRule{}, ErrInvalidAdjustment
		}
		rule.Kind = models.AdjustmentPercent
		rule.Percent = *percent
	case nominal != nil:
		if *nominal <= 0 {
			return models.SeasonRule{}, ErrInvalidAdjustment
		}
		rule.Kind = models.AdjustmentNominal
		rule.Nominal = *nominal
	}
	return rule, nil
}

// Apply creates one season rule and records it in the change history.
func (s *SeasonRuleService) Apply(roomTypeID uint, start, end time.Time, isAvailable bool, percent *float64, nominal *int64) (models.SeasonRule, error) {
	rule, err := buildRule(roomTypeID, start, end, isAvailable, percent, nominal)
	if err != nil {
		return models.SeasonRule{}, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var rt models.RoomType
		if err := tx.First(&rt, roomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("failed to load room type: %w", err)
		}

		if err := tx.Create(&rule).Error; err != nil {
			return fmt.Errorf("failed to create season rule: %w", err)
		}
		return logRuleAction(tx, rule, models.RuleActionCreated)
	})
	if err != nil {
		return models.SeasonRule{}, err
	}
	return rule, nil
}

// List returns every rule of a room type, overlaps included.
func (s *SeasonRuleService) List(roomTypeID uint) ([]models.SeasonRule, error) {
	var rules []models.SeasonRule
	if err := s.DB.
		Where("room_type_id = ?", roomTypeID).
		Order("start_date, id").
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list season rules: %w", err)
	}
	return rules, nil
}

// Delete removes a single rule and records the deletion.
func (s *SeasonRuleService) Delete(ruleID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var rule models.SeasonRule
		if err := tx.First(&rule, ruleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRuleNotFound
			}
			return fmt.Errorf("failed to load season rule: %w", err)
		}
		if err := tx.Delete(&rule).Error; err != nil {
			return fmt.Errorf("failed to delete season rule: %w", err)
		}
		return logRuleAction(tx, rule, models.RuleActionDeleted)
	})
}

// BulkDelete removes the given rules of one room type, skipping ids
// that do not belong to it.
func (s *SeasonRuleService) BulkDelete(roomTypeID uint, ruleIDs []uint) (int, error) {
	if len(ruleIDs) == 0 {
		return 0, nil
	}

	deleted := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rules []models.SeasonRule
		if err := tx.
			Where("room_type_id = ? AND id IN ?", roomTypeID, ruleIDs).
			Find(&rules).Error; err != nil {
			return fmt.Errorf("failed to load season rules: %w", err)
		}

		for _, rule := range rules {
			if err := tx.Delete(&rule).Error; err != nil {
				return fmt.Errorf("failed to delete season rule %d: %w", rule.ID, err)
			}
			if err := logRuleAction(tx, rule, models.RuleActionDeleted); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// History returns the change log of a room type, newest first. Display
// only; never consulted by pricing or availability.
func (s *SeasonRuleService) History(roomTypeID uint) ([]models.SeasonRuleLog, error) {
	var logs []models.SeasonRuleLog
	if err := s.DB.
		Where("room_type_id = ?", roomTypeID).
		Order("created_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list rule history: %w", err)
	}
	return logs, nil
}

func logRuleAction(tx *gorm.DB, rule models.SeasonRule, action string) error {
	snapshot, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("failed to snapshot rule: %w", err)
	}
	entry := models.SeasonRuleLog{
		RoomTypeID: rule.RoomTypeID,
		RuleID:     rule.ID,
		Action:     action,
		Rule:       datatypes.JSON(snapshot),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to log rule %s: %w", action, err)
	}
	return nil
}
