package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shelfItem(name string, expirationHours float64) models.FoodItem {
	return models.FoodItem{Name: name, ExpirationHours: expirationHours}
}

func TestClassifyItemWasted(t *testing.T) {
	created := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := created.Add(30 * time.Hour)

	item := ClassifyItem(shelfItem("milk", 24), created, now)
	assert.Equal(t, StatusWasted, item.Status)
	assert.InDelta(t, 30, item.HoursElapsed, 0.001)
	assert.InDelta(t, -6, item.HoursRemaining, 0.001, "overdue items go negative, not zero")
	assert.InDelta(t, -25, item.PercentageRemaining, 0.001)
}

func TestClassifyItemWarning(t *testing.T) {
	created := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := created.Add(15 * time.Hour)

	item := ClassifyItem(shelfItem("yogurt", 24), created, now)
	assert.Equal(t, StatusWarning, item.Status)
	assert.InDelta(t, 9, item.HoursRemaining, 0.001)
	assert.InDelta(t, 37.5, item.PercentageRemaining, 0.001)
}

func TestClassifyItemHealthy(t *testing.T) {
	created := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := created.Add(5 * time.Hour)

	item := ClassifyItem(shelfItem("rice", 24), created, now)
	assert.Equal(t, StatusHealthy, item.Status)
	assert.InDelta(t, 19, item.HoursRemaining, 0.001)
	assert.InDelta(t, 79.17, item.PercentageRemaining, 0.001)
}

func TestClassifyItemExactBoundaries(t *testing.T) {
	created := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	// Exactly expired counts as wasted.
	atExpiry := ClassifyItem(shelfItem("bread", 24), created, created.Add(24*time.Hour))
	assert.Equal(t, StatusWasted, atExpiry.Status)

	// Exactly 40% remaining counts as warning.
	atForty := ClassifyItem(shelfItem("bread", 100), created, created.Add(60*time.Hour))
	assert.Equal(t, StatusWarning, atForty.Status)
}

func TestClassifyItemNonPositiveShelfLife(t *testing.T) {
	created := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	item := ClassifyItem(shelfItem("unknown", 0), created, created.Add(time.Hour))
	assert.Equal(t, StatusWasted, item.Status)
	assert.Equal(t, 0.0, item.PercentageRemaining, "no shelf life never divides")
}

func TestClassifyInventoryPartition(t *testing.T) {
	created := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := created.Add(20 * time.Hour)

	items := []models.InventoryItem{
		{FoodItem: shelfItem("fresh", 100)},   // 80% left
		{FoodItem: shelfItem("closer", 30)},   // 10h left, 33%
		{FoodItem: shelfItem("closest", 25)},  // 5h left, 20%
		{FoodItem: shelfItem("gone", 12)},     // -8h
		{FoodItem: shelfItem("long gone", 6)}, // -14h
	}

	warning, wasted, counts := ClassifyInventory(items, created, now)

	assert.Equal(t, WasteCounts{Total: 5, Healthy: 1, Warning: 2, Wasted: 2}, counts)
	assert.Equal(t, counts.Total, counts.Healthy+counts.Warning+counts.Wasted)

	// Most urgent first.
	require.Len(t, warning, 2)
	assert.Equal(t, "closest", warning[0].Name)
	assert.Equal(t, "closer", warning[1].Name)

	require.Len(t, wasted, 2)
	assert.Equal(t, "long gone", wasted[0].Name)
	assert.Equal(t, "gone", wasted[1].Name)
}

func TestClassifyInventoryEmpty(t *testing.T) {
	created := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	warning, wasted, counts := ClassifyInventory(nil, created, created)
	assert.NotNil(t, warning)
	assert.NotNil(t, wasted)
	assert.Equal(t, WasteCounts{}, counts)
}
