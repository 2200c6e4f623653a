package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rental-backend/engine"
	"rental-backend/models"
)

// AvailabilityService serves the read-only calendar and occupancy
// report views. It fetches a snapshot of rules and reservations and
// hands them to the pure aggregator.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// Calendar computes per-day availability for [start, end).
func (s *AvailabilityService) Calendar(roomTypeID uint, start, end time.Time) ([]engine.DayAvailability, error) {
	start, end = engine.DateOnly(start), engine.DateOnly(end)
	if !start.Before(end) {
		return nil, engine.ErrInvalidRange
	}

	var rt models.RoomType
	if err := s.DB.First(&rt, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to load room type: %w", err)
	}

	var rules []models.SeasonRule
	if err := s.DB.Where("room_type_id = ?", roomTypeID).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to load season rules: %w", err)
	}

	var reservations []models.Transaction
	if err := s.DB.
		Where("room_type_id = ? AND status <> ? AND check_in < ? AND check_out > ?",
			roomTypeID, models.StatusCancelled, end, start).
		Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	return engine.ComputeAvailability(rt, rules, reservations, start, end), nil
}
