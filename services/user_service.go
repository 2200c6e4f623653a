package services

import (
	"fmt"

	"gorm.io/gorm"

	"rental-backend/models"
)

// UserService covers the minimum this backend needs: creating the
// identity a transaction references. Authentication and sessions are an
// external collaborator's job.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) Create(u *models.User) error {
	if err := s.DB.Create(u).Error; err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("email already registered: %w", err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
