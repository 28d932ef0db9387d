package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(gender string) *models.HealthProfile {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.HealthProfile{
		BirthDate:           &birth,
		Gender:              gender,
		HeightCm:            180,
		CurrentWeightKg:     80,
		ActivityLevelFactor: 1.5,
	}
}

// Fixed reference date so the derived age is always 30.
var testNow = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDeriveTargetsMaintenance(t *testing.T) {
	// BMR = 800 + 1125 - 150 + 5 = 1780; TDEE = 1780 * 1.5 = 2670.
	targets, err := DeriveTargets(testProfile("male"), []string{models.GoalMaintenance}, 70, testNow)
	require.NoError(t, err)

	assert.InDelta(t, 2670, targets.Calories, 0.001)
	assert.InDelta(t, 84, targets.Protein, 0.001) // 1.2 * 70
	assert.InDelta(t, 2670*0.25/9, targets.FatTotal, 0.001)
	assert.InDelta(t, 25, targets.Fiber, 0.001)
	// Remaining calories after protein and fat go to carbs.
	expectedCarbs := (2670 - 84*4 - (2670*0.25/9)*9) / 4
	assert.InDelta(t, expectedCarbs, targets.Carbohydrate, 0.001)
}

func TestDeriveTargetsWeightLoss(t *testing.T) {
	targets, err := DeriveTargets(testProfile("male"), []string{models.GoalWeightLoss}, 70, testNow)
	require.NoError(t, err)

	assert.InDelta(t, 2420, targets.Calories, 0.001) // 2670 - 250
	assert.InDelta(t, 70, targets.Protein, 0.001)
}

func TestDeriveTargetsMuscleGain(t *testing.T) {
	targets, err := DeriveTargets(testProfile("male"), []string{models.GoalMuscleGain}, 70, testNow)
	require.NoError(t, err)

	assert.InDelta(t, 2970, targets.Calories, 0.001) // 2670 + 300
	assert.InDelta(t, 126, targets.Protein, 0.001)   // 1.8 * 70
}

func TestDeriveTargetsStackedGoals(t *testing.T) {
	// Rule order, not input order, decides which goal wins the stack.
	a, err := DeriveTargets(testProfile("male"), []string{models.GoalWeightLoss, models.GoalMuscleGain}, 70, testNow)
	require.NoError(t, err)
	b, err := DeriveTargets(testProfile("male"), []string{models.GoalMuscleGain, models.GoalWeightLoss}, 70, testNow)
	require.NoError(t, err)

	assert.InDelta(t, 2970, a.Calories, 0.001)
	assert.Equal(t, a.Calories, b.Calories)
	assert.Equal(t, a.Protein, b.Protein)
}

func TestDeriveTargetsUnknownGoalFallsBackToTDEE(t *testing.T) {
	targets, err := DeriveTargets(testProfile("male"), []string{models.GoalImproveHealth}, 70, testNow)
	require.NoError(t, err)

	assert.InDelta(t, 2670, targets.Calories, 0.001)
	assert.InDelta(t, 70, targets.Protein, 0.001) // bodyweight default
}

func TestDeriveTargetsGenderConstants(t *testing.T) {
	male, err := DeriveTargets(testProfile("male"), []string{models.GoalMaintenance}, 70, testNow)
	require.NoError(t, err)
	female, err := DeriveTargets(testProfile("female"), []string{models.GoalMaintenance}, 70, testNow)
	require.NoError(t, err)

	assert.Equal(t, 3400.0, male.Potassium)
	assert.Equal(t, 8.0, male.Iron)
	assert.Equal(t, 900.0, male.VitaminA)

	assert.Equal(t, 2600.0, female.Potassium)
	assert.Equal(t, 18.0, female.Iron)
	assert.Equal(t, 700.0, female.VitaminA)

	// Gender-independent targets.
	assert.Equal(t, 2300.0, male.Sodium)
	assert.Equal(t, female.Sodium, male.Sodium)
	assert.Equal(t, 300.0, male.Cholesterol)
	assert.Equal(t, 1000.0, male.Calcium)
}

func TestDeriveTargetsIncompleteProfile(t *testing.T) {
	profile := testProfile("male")
	profile.BirthDate = nil

	_, err := DeriveTargets(profile, []string{models.GoalMaintenance}, 70, testNow)
	assert.ErrorIs(t, err, ErrIncompleteProfile)

	profile = testProfile("male")
	profile.HeightCm = 0
	_, err = DeriveTargets(profile, []string{models.GoalMaintenance}, 70, testNow)
	assert.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestAdjustCurrentIndex(t *testing.T) {
	idx := func(v int) *int { return &v }

	assert.Nil(t, AdjustCurrentIndex(nil, 0))
	assert.Nil(t, AdjustCurrentIndex(idx(2), 2), "deleting the current goal clears the pointer")

	shifted := AdjustCurrentIndex(idx(2), 0)
	require.NotNil(t, shifted)
	assert.Equal(t, 1, *shifted, "deleting an earlier goal shifts the pointer down")

	unchanged := AdjustCurrentIndex(idx(1), 2)
	require.NotNil(t, unchanged)
	assert.Equal(t, 1, *unchanged, "deleting a later goal leaves the pointer alone")
}
