package models

import (
	"strings"

	"gorm.io/gorm"
)

// FoodItem is a shared catalog entry. Nutrients are normalized per 100
// units of the metric serving; ServingQuantity × logged quantity / 100 is
// the consumed factor used everywhere downstream.
type FoodItem struct {
	gorm.Model
	Name        string `gorm:"not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	ServingQuantity    float64 `gorm:"not null;default:1" json:"serving_quantity"`
	ServingUnit        string  `gorm:"not null" json:"serving_unit"`
	ServingWeightGrams float64 `gorm:"not null" json:"serving_weight_grams"`

	MetricServingAmount float64 `gorm:"not null;default:100" json:"metric_serving_amount"`
	MetricServingUnit   string  `gorm:"not null;default:g" json:"metric_serving_unit"` // "g" or "ml"

	Nutrients NutrientVector `gorm:"embedded" json:"nutrients"`

	// Shelf life counted from the moment the item enters an inventory.
	ExpirationHours float64 `gorm:"not null" json:"expiration_hours"`

	ImageURL  string `json:"image_url,omitempty"`
	Tags      string `gorm:"type:text" json:"tags"`      // comma-separated
	Allergens string `gorm:"type:text" json:"allergens"` // comma-separated
	Source    string `gorm:"not null;default:Seed" json:"source"`
	CreatedBy uint   `gorm:"index" json:"created_by"`
}

func (f *FoodItem) TagList() []string      { return splitCSV(f.Tags) }
func (f *FoodItem) AllergenList() []string { return splitCSV(f.Allergens) }

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func JoinCSV(items []string) string { return strings.Join(items, ",") }
