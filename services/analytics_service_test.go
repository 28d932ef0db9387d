package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func logEntry(day time.Time, quantity, servingQuantity float64, nutrients models.NutrientVector) models.FoodLogEntry {
	return models.FoodLogEntry{
		Date:     day,
		Quantity: quantity,
		FoodItem: models.FoodItem{
			ServingQuantity: servingQuantity,
			Nutrients:       nutrients,
		},
	}
}

func TestSumLogsForDayConsumedFactor(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	per100 := models.NutrientVector{Calories: 200, Protein: 10, Sodium: 150}

	// 2 servings of 50 units: factor = 2*50/100 = 1, so the per-100 values
	// come through unscaled.
	sum, matched := sumLogsForDay([]models.FoodLogEntry{logEntry(day, 2, 50, per100)}, day)
	assert.Len(t, matched, 1)
	assert.InDelta(t, 200, sum.Calories, 0.001)
	assert.InDelta(t, 10, sum.Protein, 0.001)
	assert.InDelta(t, 150, sum.Sodium, 0.001)

	// 3 servings of 150 units: factor 4.5.
	sum, _ = sumLogsForDay([]models.FoodLogEntry{logEntry(day, 3, 150, per100)}, day)
	assert.InDelta(t, 900, sum.Calories, 0.001)
	assert.InDelta(t, 45, sum.Protein, 0.001)
}

func TestSumLogsForDayAdditivity(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	logs := []models.FoodLogEntry{
		logEntry(day, 1, 100, models.NutrientVector{Calories: 300, Fiber: 5}),
		logEntry(day, 1, 100, models.NutrientVector{Calories: 450, Fiber: 3}),
		logEntry(day, 0.5, 100, models.NutrientVector{Calories: 200, Fiber: 2}),
	}

	sum, matched := sumLogsForDay(logs, day)
	assert.Len(t, matched, 3)
	assert.InDelta(t, 850, sum.Calories, 0.001)
	assert.InDelta(t, 9, sum.Fiber, 0.001)
}

func TestSumLogsForDayFiltersOtherDays(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	logs := []models.FoodLogEntry{
		logEntry(day, 1, 100, models.NutrientVector{Calories: 300}),
		logEntry(day.AddDate(0, 0, 1), 1, 100, models.NutrientVector{Calories: 999}),
		// Same calendar day at a different hour still matches.
		logEntry(day.Add(20*time.Hour), 1, 100, models.NutrientVector{Calories: 100}),
	}

	sum, matched := sumLogsForDay(logs, day)
	assert.Len(t, matched, 2)
	assert.InDelta(t, 400, sum.Calories, 0.001)
}

func TestSumLogsForDayEmpty(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)

	sum, matched := sumLogsForDay(nil, day)
	assert.Empty(t, matched)
	assert.Equal(t, models.NutrientVector{}, sum)
}

func TestWeeklyAveragesAreTotalsOverSeven(t *testing.T) {
	totals := models.NutrientVector{Calories: 14000, Protein: 560, Sodium: 16100}
	averages := totals.Scale(1.0 / 7.0)

	assert.InDelta(t, 2000, averages.Calories, 0.001)
	assert.InDelta(t, 80, averages.Protein, 0.001)
	assert.InDelta(t, 2300, averages.Sodium, 0.001)
}

func TestPercentOfZeroTarget(t *testing.T) {
	consumed := models.NutrientVector{Calories: 2000, VitaminD: 10}
	targets := models.NutrientVector{Calories: 2000} // VitaminD target unset

	pct := consumed.PercentOf(targets)
	assert.InDelta(t, 100, pct.Calories, 0.001)
	assert.Equal(t, 0.0, pct.VitaminD, "zero targets never divide")
}
