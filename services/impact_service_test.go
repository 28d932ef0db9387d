package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetricScore(t *testing.T) {
	assert.Equal(t, 1.0, symmetricScore(100))
	assert.Equal(t, 1.0, symmetricScore(110), "within the ±10 band")
	assert.Equal(t, 1.0, symmetricScore(90))

	assert.InDelta(t, 0.8, symmetricScore(120), 0.001)
	assert.InDelta(t, 0.8, symmetricScore(80), 0.001, "over and under are penalized equally")
	assert.InDelta(t, 0.6, symmetricScore(70), 0.001)

	assert.Equal(t, 0.0, symmetricScore(160))
	assert.Equal(t, 0.0, symmetricScore(40))
	assert.Equal(t, 0.0, symmetricScore(0))
	assert.Equal(t, 0.0, symmetricScore(500))
}

func TestSodiumScore(t *testing.T) {
	assert.Equal(t, 1.0, sodiumScore(0), "under target is free")
	assert.Equal(t, 1.0, sodiumScore(100))

	assert.InDelta(t, 0.5, sodiumScore(130), 0.001)
	assert.Equal(t, 0.0, sodiumScore(160))
	assert.Equal(t, 0.0, sodiumScore(300))
}

func TestNutritionScoreBounds(t *testing.T) {
	perfect := models.NutrientVector{Calories: 100, Protein: 100, Fiber: 100, Sodium: 90}
	assert.InDelta(t, 70, NutritionScore(perfect), 0.001)

	terrible := models.NutrientVector{Calories: 500, Protein: 0, Fiber: 0, Sodium: 400}
	assert.Equal(t, 0.0, NutritionScore(terrible))

	partial := models.NutrientVector{Calories: 100, Protein: 0, Fiber: 0, Sodium: 300}
	// Only the calorie weight survives: 0.4 * 70.
	assert.InDelta(t, 28, NutritionScore(partial), 0.001)
}

func TestWasteScore(t *testing.T) {
	assert.InDelta(t, 21, WasteScore(WasteCounts{}), 0.001, "empty inventory is neutral, not perfect")

	allHealthy := WasteCounts{Total: 5, Healthy: 5}
	assert.InDelta(t, 30, WasteScore(allHealthy), 0.001)

	allWasted := WasteCounts{Total: 5, Wasted: 5}
	assert.InDelta(t, 9, WasteScore(allWasted), 0.001) // 1 - 0.7

	mixed := WasteCounts{Total: 4, Healthy: 2, Warning: 1, Wasted: 1}
	// 1 - (0.7*0.25 + 0.3*0.25) = 0.75
	assert.InDelta(t, 22.5, WasteScore(mixed), 0.001)
}

func TestFinalScore(t *testing.T) {
	assert.Equal(t, 100, FinalScore(70, 30))
	assert.Equal(t, 1, FinalScore(0, 0), "the floor is 1, never 0")
	assert.Equal(t, 100, FinalScore(90, 40), "sums above 100 clamp")
	assert.Equal(t, 51, FinalScore(28.3, 22.5))
}

func TestComposeFindingsAllOnTrack(t *testing.T) {
	pct := models.NutrientVector{Calories: 100, Protein: 95, Fiber: 92, Sodium: 80}
	counts := WasteCounts{Total: 3, Healthy: 3}

	strengths, improvements := ComposeFindings(pct, counts)
	assert.Len(t, strengths, 5)
	require.Len(t, improvements, 1)
	assert.Equal(t, fallbackImprovement, improvements[0])
}

func TestComposeFindingsEverythingOff(t *testing.T) {
	pct := models.NutrientVector{Calories: 150, Protein: 50, Fiber: 40, Sodium: 150}
	counts := WasteCounts{Total: 5, Warning: 2, Wasted: 1}

	strengths, improvements := ComposeFindings(pct, counts)
	assert.Empty(t, strengths)
	assert.Len(t, improvements, 6) // over-calories, protein, fiber, sodium, wasted, expiring
}

func TestComposeFindingsUnderAndOverAreDistinct(t *testing.T) {
	under := models.NutrientVector{Calories: 60, Protein: 100, Fiber: 100, Sodium: 50}
	over := models.NutrientVector{Calories: 140, Protein: 100, Fiber: 100, Sodium: 50}
	counts := WasteCounts{Total: 1, Healthy: 1}

	_, underImp := ComposeFindings(under, counts)
	_, overImp := ComposeFindings(over, counts)
	require.Len(t, underImp, 1)
	require.Len(t, overImp, 1)
	assert.NotEqual(t, underImp[0], overImp[0])
}

func TestActionPlan(t *testing.T) {
	assert.Equal(t, "a b c", ActionPlan([]string{"a", "b", "c", "d", "e"}))
	assert.Equal(t, "a", ActionPlan([]string{"a"}))
	assert.Equal(t, "", ActionPlan(nil))
}
