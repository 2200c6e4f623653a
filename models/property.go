package models

import (
	"time"

	"gorm.io/gorm"
)

// Property is a tenant's listed property. Room types hang off it.
type Property struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID uint   `gorm:"index;column:tenant_id" json:"tenant_id"`
	Name     string `gorm:"size:160" json:"name"`
	City     string `gorm:"size:120" json:"city"`
	Address  string `gorm:"type:text" json:"address"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomTypes []RoomType `gorm:"foreignKey:PropertyID" json:"room_types,omitempty"`
}
