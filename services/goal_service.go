package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type CreateGoalInput struct {
	PrimaryGoals    []string `json:"primary_goals" binding:"required,min=1"`
	SecondaryGoals  []string `json:"secondary_goals"`
	Allergies       []string `json:"allergies"`
	ActivityLevel   string   `json:"activity_level" binding:"required"`
	TargetWeightKg  float64  `json:"target_weight_kg" binding:"required,gt=0"`
	CurrentWeightKg float64  `json:"current_weight_kg" binding:"required,gt=0"`
}

type UpdateGoalInput struct {
	PrimaryGoals    []string `json:"primary_goals"`
	SecondaryGoals  []string `json:"secondary_goals"`
	Allergies       []string `json:"allergies"`
	ActivityLevel   string   `json:"activity_level"`
	TargetWeightKg  *float64 `json:"target_weight_kg"`
	CurrentWeightKg *float64 `json:"current_weight_kg"`
}

// calorieRule maps one primary goal to its calorie and protein targets.
// Rules are applied in this fixed order and each later match overwrites the
// earlier one, mirroring the product's stacking behavior when several
// primary goals are selected at once.
type calorieRule struct {
	goal     string
	calories func(tdee float64) float64
	protein  func(weightKg float64) float64
}

var calorieRules = []calorieRule{
	{models.GoalWeightLoss, func(t float64) float64 { return t - 250 }, func(w float64) float64 { return w }},
	{models.GoalMaintenance, func(t float64) float64 { return t }, func(w float64) float64 { return 1.2 * w }},
	{models.GoalMuscleGain, func(t float64) float64 { return t + 300 }, func(w float64) float64 { return 1.8 * w }},
}

// DeriveTargets computes the daily nutrient targets for a goal from the
// health profile. The profile must be complete (weight, height, gender,
// birth date, activity factor) or ErrIncompleteProfile is returned.
func DeriveTargets(profile *models.HealthProfile, primaryGoals []string, currentWeightKg float64, now time.Time) (models.NutrientVector, error) {
	if !profile.Complete() {
		return models.NutrientVector{}, ErrIncompleteProfile
	}

	age := utils.CalculateAge(*profile.BirthDate, now)
	bmr, err := utils.CalculateBMR(profile.CurrentWeightKg, profile.HeightCm, age, profile.Gender)
	if err != nil {
		return models.NutrientVector{}, ErrIncompleteProfile
	}
	tdee := bmr * profile.ActivityLevelFactor

	calories := tdee
	protein := currentWeightKg

	has := func(goal string) bool {
		for _, g := range primaryGoals {
			if g == goal {
				return true
			}
		}
		return false
	}
	for _, rule := range calorieRules {
		if has(rule.goal) {
			calories = rule.calories(tdee)
			protein = rule.protein(currentWeightKg)
		}
	}

	fatTotal := calories * 0.25 / 9
	fiber := 25.0
	carbohydrate := (calories - protein*4 - fatTotal*9) / 4

	targets := models.NutrientVector{
		Calories:     calories,
		Protein:      protein,
		Carbohydrate: carbohydrate,
		FatTotal:     fatTotal,
		Fiber:        fiber,

		// Mineral targets (mg) and vitamin targets, keyed by gender.
		Sodium:      2300,
		Cholesterol: 300,
		Calcium:     1000,
		Potassium:   3400,
		Iron:        8,
		Magnesium:   410,
		VitaminA:    900, // μg RAE
		VitaminC:    90,  // mg
		VitaminD:    15,  // μg
	}
	if profile.Gender == "female" {
		targets.Potassium = 2600
		targets.Iron = 18
		targets.Magnesium = 310
		targets.VitaminA = 700
		targets.VitaminC = 75
	}

	return targets, nil
}

// AdjustCurrentIndex applies the pointer-shift rules after deleting the
// goal at the given index: deleting the current goal clears the pointer,
// deleting an earlier goal shifts it down by one, deleting a later goal
// leaves it unchanged.
func AdjustCurrentIndex(current *int, deleted int) *int {
	if current == nil {
		return nil
	}
	switch {
	case *current == deleted:
		return nil
	case *current > deleted:
		v := *current - 1
		return &v
	}
	return current
}

func loadUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.Preload("HealthProfile").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func loadGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&goals).Error
	return goals, err
}

func GetGoals(userID uint) ([]models.Goal, *int, error) {
	user, err := loadUser(userID)
	if err != nil {
		return nil, nil, err
	}
	goals, err := loadGoals(userID)
	if err != nil {
		return nil, nil, err
	}
	return goals, user.CurrentGoalIndex, nil
}

// CurrentGoal resolves the user's active goal. An empty goal list (or an
// out-of-range pointer) yields ErrNoCurrentGoal; a cleared pointer falls
// back to the first goal.
func CurrentGoal(userID uint) (*models.Goal, error) {
	user, err := loadUser(userID)
	if err != nil {
		return nil, err
	}
	goals, err := loadGoals(userID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, ErrNoCurrentGoal
	}
	idx := 0
	if user.CurrentGoalIndex != nil {
		idx = *user.CurrentGoalIndex
	}
	if idx < 0 || idx >= len(goals) {
		return nil, ErrNoCurrentGoal
	}
	return &goals[idx], nil
}

// CreateGoal derives targets from the health profile, appends the goal and
// makes it current when it is the user's first one. Validation happens
// before any write.
func CreateGoal(userID uint, input CreateGoalInput) ([]models.Goal, *int, error) {
	user, err := loadUser(userID)
	if err != nil {
		return nil, nil, err
	}

	targets, err := DeriveTargets(user.HealthProfile, input.PrimaryGoals, input.CurrentWeightKg, time.Now())
	if err != nil {
		return nil, nil, err
	}

	goal := models.Goal{
		UserID:          userID,
		PrimaryGoals:    models.JoinCSV(input.PrimaryGoals),
		SecondaryGoals:  models.JoinCSV(input.SecondaryGoals),
		Allergies:       models.JoinCSV(input.Allergies),
		ActivityLevel:   input.ActivityLevel,
		TargetWeightKg:  input.TargetWeightKg,
		CurrentWeightKg: input.CurrentWeightKg,
		Targets:         targets,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&goal).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.Goal{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 1 {
			zero := 0
			return tx.Model(user).Update("current_goal_index", &zero).Error
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return GetGoals(userID)
}

// UpdateGoal changes declared fields only; derived targets stay as created.
func UpdateGoal(userID uint, index int, input UpdateGoalInput) ([]models.Goal, *int, error) {
	goals, err := loadGoals(userID)
	if err != nil {
		return nil, nil, err
	}
	if index < 0 || index >= len(goals) {
		return nil, nil, ErrNotFound
	}
	goal := &goals[index]

	if len(input.PrimaryGoals) > 0 {
		goal.PrimaryGoals = models.JoinCSV(input.PrimaryGoals)
	}
	if len(input.SecondaryGoals) > 0 {
		goal.SecondaryGoals = models.JoinCSV(input.SecondaryGoals)
	}
	if len(input.Allergies) > 0 {
		goal.Allergies = models.JoinCSV(input.Allergies)
	}
	if input.ActivityLevel != "" {
		goal.ActivityLevel = input.ActivityLevel
	}
	if input.TargetWeightKg != nil {
		goal.TargetWeightKg = *input.TargetWeightKg
	}
	if input.CurrentWeightKg != nil {
		goal.CurrentWeightKg = *input.CurrentWeightKg
	}

	if err := config.DB.Save(goal).Error; err != nil {
		return nil, nil, err
	}
	return GetGoals(userID)
}

func DeleteGoal(userID uint, index int) ([]models.Goal, *int, error) {
	user, err := loadUser(userID)
	if err != nil {
		return nil, nil, err
	}
	goals, err := loadGoals(userID)
	if err != nil {
		return nil, nil, err
	}
	if index < 0 || index >= len(goals) {
		return nil, nil, ErrNotFound
	}

	newIndex := AdjustCurrentIndex(user.CurrentGoalIndex, index)

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&goals[index]).Error; err != nil {
			return err
		}
		return tx.Model(user).Update("current_goal_index", newIndex).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return GetGoals(userID)
}

func SetCurrentGoal(userID uint, index int) ([]models.Goal, *int, error) {
	user, err := loadUser(userID)
	if err != nil {
		return nil, nil, err
	}
	goals, err := loadGoals(userID)
	if err != nil {
		return nil, nil, err
	}
	if index < 0 || index >= len(goals) {
		return nil, nil, ErrNotFound
	}

	if err := config.DB.Model(user).Update("current_goal_index", &index).Error; err != nil {
		return nil, nil, err
	}
	return GetGoals(userID)
}
