package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthProfile is the metabolic baseline for goal derivation. BirthDate,
// Gender, HeightCm, CurrentWeightKg and ActivityLevelFactor must all be
// present before a goal can be created.
type HealthProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"-"`

	BirthDate           *time.Time `json:"birth_date"`
	Gender              string     `gorm:"size:10" json:"gender"` // "male" | "female"
	HeightCm            float64    `json:"height_cm"`
	CurrentWeightKg     float64    `json:"current_weight_kg"`
	ActivityLevelFactor float64    `json:"activity_level_factor"`

	BodyFatPercentage *float64 `json:"body_fat_percentage,omitempty"`
	StepsDailyAverage *float64 `json:"steps_daily_average,omitempty"`
	SleepHoursAverage *float64 `json:"sleep_hours_average,omitempty"`
}

// Complete reports whether every field required for BMR/TDEE is present.
func (p *HealthProfile) Complete() bool {
	if p == nil {
		return false
	}
	return p.BirthDate != nil && !p.BirthDate.IsZero() &&
		(p.Gender == "male" || p.Gender == "female") &&
		p.HeightCm > 0 && p.CurrentWeightKg > 0 &&
		p.ActivityLevelFactor > 0
}
