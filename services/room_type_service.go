package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rental-backend/models"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	var prop models.Property
	if err := s.DB.First(&prop, rt.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("failed to load property: %w", err)
	}
	if err := s.DB.Create(rt).Error; err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}
	return nil
}

func (s *RoomTypeService) GetAll(propertyID uint) ([]models.RoomType, error) {
	q := s.DB.Order("id")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}

	var types []models.RoomType
	if err := q.Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	return types, nil
}

func (s *RoomTypeService) GetByID(id uint) (models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoomType{}, ErrRoomTypeNotFound
		}
		return models.RoomType{}, fmt.Errorf("failed to load room type: %w", err)
	}
	return rt, nil
}

func (s *RoomTypeService) Update(rt models.RoomType) error {
	res := s.DB.Model(&models.RoomType{}).Where("id = ?", rt.ID).Updates(map[string]interface{}{
		"name":              rt.Name,
		"base_price":        rt.BasePrice,
		"quota":             rt.Quota,
		"capacity_adults":   rt.CapacityAdults,
		"capacity_children": rt.CapacityChildren,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update room type: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}

func (s *RoomTypeService) Delete(id uint) error {
	res := s.DB.Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room type: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}
