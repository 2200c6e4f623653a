package models

import (
	"time"

	"gorm.io/datatypes"
)

// AdjustmentKind is the closed set of price adjustments a season rule
// can carry. Percentage and nominal are mutually exclusive by
// construction: a rule stores exactly one kind.
type AdjustmentKind string

const (
	AdjustmentNone    AdjustmentKind = "NONE"
	AdjustmentPercent AdjustmentKind = "PERCENT"
	AdjustmentNominal AdjustmentKind = "NOMINAL"
)

// SeasonRule marks an inclusive calendar-day range on a room type as a
// blackout or as carrying a price adjustment. Ranges of different rules
// may overlap freely; precedence is resolved at computation time.
type SeasonRule struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	RoomTypeID uint `gorm:"index;column:room_type_id" json:"room_type_id"`

	// Inclusive bounds, stored at midnight UTC.
	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`

	// When false the range is a blackout regardless of adjustment.
	IsAvailable bool `gorm:"column:is_available;default:true" json:"is_available"`

	Kind AdjustmentKind `gorm:"column:kind;size:16;default:NONE" json:"kind"`

	// Percent is valid only when Kind == AdjustmentPercent, Nominal only
	// when Kind == AdjustmentNominal. The store rejects payloads setting
	// both at write time.
	Percent float64 `gorm:"column:percent" json:"percent,omitempty"`
	Nominal int64   `gorm:"column:nominal" json:"nominal,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Matches reports whether d (a midnight-UTC day) falls inside the
// rule's inclusive range.
func (r SeasonRule) Matches(d time.Time) bool {
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}

// SpanDays is the number of calendar days the rule covers. Shorter
// spans take precedence when rules overlap.
func (r SeasonRule) SpanDays() int {
	return int(r.EndDate.Sub(r.StartDate)/(24*time.Hour)) + 1
}

// HasAdjustment reports whether the rule carries a price adjustment,
// which is what flags a date as peak season.
func (r SeasonRule) HasAdjustment() bool {
	return r.Kind == AdjustmentPercent || r.Kind == AdjustmentNominal
}

const (
	RuleActionCreated = "CREATED"
	RuleActionDeleted = "DELETED"
)

// SeasonRuleLog is the append-only change history shown in the tenant
// dashboard. Display only, never read by the engine.
type SeasonRuleLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	RoomTypeID uint           `gorm:"index;column:room_type_id" json:"room_type_id"`
	RuleID     uint           `gorm:"column:rule_id" json:"rule_id"`
	Action     string         `gorm:"column:action;size:16" json:"action"`
	Rule       datatypes.JSON `gorm:"column:rule" json:"rule"`
	CreatedAt  time.Time      `json:"created_at"`
}
