package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`
	ImageURL string `json:"image_url,omitempty"`

	// Zero-based index into the user's goal list (ordered by creation);
	// nil means no current goal is selected.
	CurrentGoalIndex *int `json:"current_goal_index"`

	HealthProfile *HealthProfile `json:"health_profile,omitempty"`
	FoodLogs      []FoodLogEntry `json:"food_logs,omitempty"`
	Goals         []Goal         `json:"goals,omitempty"`
	Inventories   []Inventory    `json:"inventories,omitempty"`
}
