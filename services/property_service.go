package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rental-backend/models"
)

var ErrPropertyNotFound = errors.New("property_not_found")

type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

func (s *PropertyService) Create(p *models.Property) error {
	if err := s.DB.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

func (s *PropertyService) GetAll() ([]models.Property, error) {
	var list []models.Property
	if err := s.DB.Preload("RoomTypes").Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return list, nil
}

func (s *PropertyService) GetByID(id uint) (models.Property, error) {
	var p models.Property
	if err := s.DB.Preload("RoomTypes").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Property{}, ErrPropertyNotFound
		}
		return models.Property{}, fmt.Errorf("failed to load property: %w", err)
	}
	return p, nil
}

func (s *PropertyService) Delete(id uint) error {
	res := s.DB.Delete(&models.Property{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete property: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}
