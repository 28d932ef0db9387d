package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

func GetProfile(userID uint) (*models.User, error) {
	return loadUser(userID)
}

// UpdateProfile changes the display name and, when a new password is given,
// verifies the current one first.
func UpdateProfile(userID uint, fullName, currentPassword, newPassword string) (*models.User, error) {
	user, err := loadUser(userID)
	if err != nil {
		return nil, err
	}

	if fullName != "" {
		user.FullName = fullName
	}

	if newPassword != "" {
		if !utils.CheckPasswordHash(currentPassword, user.Password) {
			return nil, errors.New("current password is incorrect")
		}
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func SetProfileImage(userID uint, imageURL string) (*models.User, error) {
	user, err := loadUser(userID)
	if err != nil {
		return nil, err
	}
	user.ImageURL = imageURL
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

type HealthProfileInput struct {
	BirthDate           *time.Time `json:"birth_date" binding:"required"`
	Gender              string     `json:"gender" binding:"required,oneof=male female"`
	HeightCm            float64    `json:"height_cm" binding:"required,gt=0"`
	CurrentWeightKg     float64    `json:"current_weight_kg" binding:"required,gt=0"`
	ActivityLevelFactor float64    `json:"activity_level_factor" binding:"required,gt=0"`

	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	StepsDailyAverage *float64 `json:"steps_daily_average"`
	SleepHoursAverage *float64 `json:"sleep_hours_average"`
}

func UpsertHealthProfile(userID uint, input HealthProfileInput) (*models.HealthProfile, error) {
	if _, err := loadUser(userID); err != nil {
		return nil, err
	}

	var profile models.HealthProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile.UserID = userID
	profile.BirthDate = input.BirthDate
	profile.Gender = input.Gender
	profile.HeightCm = input.HeightCm
	profile.CurrentWeightKg = input.CurrentWeightKg
	profile.ActivityLevelFactor = input.ActivityLevelFactor
	profile.BodyFatPercentage = input.BodyFatPercentage
	profile.StepsDailyAverage = input.StepsDailyAverage
	profile.SleepHoursAverage = input.SleepHoursAverage

	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ---------- Food logs ----------

func ListFoodLogs(userID uint) ([]models.FoodLogEntry, error) {
	if _, err := loadUser(userID); err != nil {
		return nil, err
	}
	var logs []models.FoodLogEntry
	err := config.DB.
		Preload("FoodItem").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&logs).Error
	return logs, err
}

func AddFoodLog(userID uint, date time.Time, timeLabel string, foodItemID uint, quantity float64) ([]models.FoodLogEntry, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if _, err := loadUser(userID); err != nil {
		return nil, err
	}

	var food models.FoodItem
	if err := config.DB.First(&food, foodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry := models.FoodLogEntry{
		UserID:     userID,
		Date:       date,
		Time:       timeLabel,
		FoodItemID: food.ID,
		Quantity:   quantity,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return ListFoodLogs(userID)
}

// DeleteFoodLog removes the entry at the zero-based index into the user's
// log list ordered by creation.
func DeleteFoodLog(userID uint, index int) (*models.FoodLogEntry, []models.FoodLogEntry, error) {
	logs, err := ListFoodLogs(userID)
	if err != nil {
		return nil, nil, err
	}
	if index < 0 || index >= len(logs) {
		return nil, nil, ErrNotFound
	}

	removed := logs[index]
	if err := config.DB.Unscoped().Delete(&removed).Error; err != nil {
		return nil, nil, err
	}

	remaining, err := ListFoodLogs(userID)
	if err != nil {
		return nil, nil, err
	}
	return &removed, remaining, nil
}
