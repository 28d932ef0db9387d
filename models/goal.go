package models

import (
	"gorm.io/gorm"
)

// Primary goal values, in the fixed override order the deriver applies them.
const (
	GoalWeightLoss       = "weight_loss"
	GoalMuscleGain       = "muscle_gain"
	GoalMaintenance      = "maintenance"
	GoalRecomposition    = "recomposition"
	GoalImproveEndurance = "improve_endurance"
	GoalImproveHealth    = "improve_health"
)

var PrimaryGoalValues = []string{
	GoalWeightLoss, GoalMuscleGain, GoalMaintenance,
	GoalRecomposition, GoalImproveEndurance, GoalImproveHealth,
}

var SecondaryGoalValues = []string{
	"better_sleep", "more_energy", "improve_mood", "improve_markers", "build_habits",
}

var ActivityLevelValues = []string{
	"sedentary", "lightly_active", "moderately_active", "very_active", "extra_active",
}

// Goal is one append-only entry in a user's goal list: the declared
// objective plus the derived daily nutrient targets. The list is ordered by
// creation; User.CurrentGoalIndex selects the active entry.
type Goal struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"-"`

	PrimaryGoals   string `gorm:"type:text;not null" json:"primary_goals"` // comma-separated
	SecondaryGoals string `gorm:"type:text" json:"secondary_goals"`
	Allergies      string `gorm:"type:text" json:"allergies"`
	ActivityLevel  string `gorm:"size:32" json:"activity_level"`

	TargetWeightKg  float64 `gorm:"not null" json:"target_weight_kg"`
	CurrentWeightKg float64 `gorm:"not null" json:"current_weight_kg"`

	Targets NutrientVector `gorm:"embedded" json:"targets"`
}

func (g *Goal) PrimaryGoalList() []string { return splitCSV(g.PrimaryGoals) }

// HasPrimary reports whether the declared primary goals include v.
func (g *Goal) HasPrimary(v string) bool {
	for _, p := range g.PrimaryGoalList() {
		if p == v {
			return true
		}
	}
	return false
}
