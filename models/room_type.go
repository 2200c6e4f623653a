package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is one bookable category of physically interchangeable units
// belonging to a property.
type RoomType struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"index;column:property_id" json:"property_id"`
	Name       string `gorm:"size:120" json:"name"`

	// Smallest currency unit, never fractional.
	BasePrice int64 `gorm:"column:base_price" json:"base_price"`

	// Number of interchangeable units of this type.
	Quota int `gorm:"column:quota;default:1" json:"quota"`

	// Per-unit occupancy limits. Booking qty does not multiply these;
	// each unit independently houses up to this many guests.
	CapacityAdults   int `gorm:"column:capacity_adults;default:1" json:"capacity_adults"`
	CapacityChildren int `gorm:"column:capacity_children;default:0" json:"capacity_children"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
}
