package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a booking user or a tenant. Authentication and sessions are
// handled by an external service; this backend only needs the identity
// a transaction references.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:160" json:"full_name"`
	Email    string `gorm:"size:160;uniqueIndex" json:"email"`
	Phone    string `gorm:"size:32" json:"phone,omitempty"`
	Password string `gorm:"size:128" json:"-"`
	IsTenant bool   `gorm:"column:is_tenant;default:false" json:"is_tenant"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
