package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLogEntry records one consumption event. Date is compared on the
// calendar day only; Time is a free-form label ("breakfast", "08:30") and
// plays no part in scoring. Entries are never mutated in place.
type FoodLogEntry struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"-"`

	Date time.Time `gorm:"index;not null" json:"date"`
	Time string    `gorm:"not null" json:"time"`

	FoodItemID uint     `gorm:"not null" json:"food_item_id"`
	FoodItem   FoodItem `json:"food_item"`

	// Multiplier of one serving (serving_quantity) consumed.
	Quantity float64 `gorm:"not null" json:"quantity"`
}
