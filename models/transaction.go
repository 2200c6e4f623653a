package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusWaitingForPayment      = "WAITING_FOR_PAYMENT"
	StatusWaitingForConfirmation = "WAITING_FOR_CONFIRMATION"
	StatusAccepted               = "ACCEPTED"
	StatusCancelled              = "CANCELLED"
)

// Transaction is a reservation occupying room-type quota. qty units are
// held from CheckIn (inclusive) to CheckOut (exclusive); the checkout
// day is never an occupied night.
type Transaction struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	UserID        uint   `gorm:"index;column:user_id" json:"user_id"`
	RoomTypeID    uint   `gorm:"index;column:room_type_id" json:"room_type_id"`

	CheckIn  time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out" json:"check_out"`

	Qty      int `gorm:"column:qty;default:1" json:"qty"`
	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	Status string `gorm:"column:status;size:32;index" json:"status"`

	// Total and per-night breakdown as quoted at booking time, frozen
	// even if season rules change afterwards.
	Total     int64          `gorm:"column:total" json:"total"`
	Breakdown datatypes.JSON `gorm:"column:breakdown" json:"breakdown,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User     User     `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"room_type,omitempty"`
}

// CountsTowardQuota reports whether the reservation consumes quota for
// availability purposes. Unpaid and unconfirmed bookings hold their
// units (soft hold); only cancellation releases them.
func (t Transaction) CountsTowardQuota() bool {
	return t.Status != StatusCancelled
}

// CoversNight reports whether d falls inside [CheckIn, CheckOut).
func (t Transaction) CoversNight(d time.Time) bool {
	return !d.Before(t.CheckIn) && d.Before(t.CheckOut)
}
