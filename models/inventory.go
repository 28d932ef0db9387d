package models

import (
	"gorm.io/gorm"
)

// Inventory is a user-owned container of food item references. Its
// CreatedAt timestamp is the shared age-zero point for expiration math:
// every item in the inventory is as old as the inventory itself.
type Inventory struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"-"`
	Name   string `gorm:"not null" json:"name"`

	Items []InventoryItem `json:"items,omitempty"`
}

type InventoryItem struct {
	gorm.Model
	InventoryID uint     `gorm:"index;not null" json:"-"`
	FoodItemID  uint     `gorm:"not null" json:"food_item_id"`
	FoodItem    FoodItem `json:"food_item"`
}
