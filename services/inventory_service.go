package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type InventoryService struct{ db *gorm.DB }

func NewInventoryService(db *gorm.DB) *InventoryService { return &InventoryService{db: db} }

// ---------- Expiration classification ----------

type ItemStatus string

const (
	StatusHealthy ItemStatus = "healthy"
	StatusWarning ItemStatus = "warning"
	StatusWasted  ItemStatus = "wasted"
)

type ExpirationItem struct {
	FoodItemID      uint    `json:"food_item_id"`
	Name            string  `json:"name"`
	ImageURL        string  `json:"image_url,omitempty"`
	ExpirationHours float64 `json:"expiration_hours"`

	HoursElapsed        float64    `json:"hoursElapsed"`
	HoursRemaining      float64    `json:"hoursRemaining"`
	PercentageRemaining float64    `json:"percentageRemaining"`
	Status              ItemStatus `json:"status"`
}

type WasteCounts struct {
	Total   int `json:"totalItems"`
	Healthy int `json:"healthyCount"`
	Warning int `json:"warningCount"`
	Wasted  int `json:"wastedCount"`
}

// ClassifyItem places one item in exactly one of healthy/warning/wasted.
// Every item in an inventory shares the inventory's CreatedAt as its
// age-zero point. A non-positive shelf life is guarded as immediately
// wasted with percentageRemaining 0.
func ClassifyItem(item models.FoodItem, inventoryCreatedAt, now time.Time) ExpirationItem {
	hoursElapsed := now.Sub(inventoryCreatedAt).Hours()
	hoursRemaining := item.ExpirationHours - hoursElapsed

	percentageRemaining := 0.0
	if item.ExpirationHours > 0 {
		percentageRemaining = (hoursRemaining / item.ExpirationHours) * 100.0
	}

	status := StatusHealthy
	switch {
	case hoursRemaining <= 0:
		status = StatusWasted
	case percentageRemaining <= 40:
		status = StatusWarning
	}

	return ExpirationItem{
		FoodItemID:          item.ID,
		Name:                item.Name,
		ImageURL:            item.ImageURL,
		ExpirationHours:     item.ExpirationHours,
		HoursElapsed:        round2(hoursElapsed),
		HoursRemaining:      round2(hoursRemaining),
		PercentageRemaining: round2(percentageRemaining),
		Status:              status,
	}
}

// ClassifyInventory classifies every item and returns the warning and
// wasted lists sorted most-urgent first (ascending hours remaining).
func ClassifyInventory(items []models.InventoryItem, inventoryCreatedAt, now time.Time) (warning, wasted []ExpirationItem, counts WasteCounts) {
	warning = []ExpirationItem{}
	wasted = []ExpirationItem{}
	counts.Total = len(items)

	for _, it := range items {
		classified := ClassifyItem(it.FoodItem, inventoryCreatedAt, now)
		switch classified.Status {
		case StatusWasted:
			wasted = append(wasted, classified)
			counts.Wasted++
		case StatusWarning:
			warning = append(warning, classified)
			counts.Warning++
		default:
			counts.Healthy++
		}
	}

	sort.Slice(warning, func(i, j int) bool { return warning[i].HoursRemaining < warning[j].HoursRemaining })
	sort.Slice(wasted, func(i, j int) bool { return wasted[i].HoursRemaining < wasted[j].HoursRemaining })
	return warning, wasted, counts
}

type ExpirationReport struct {
	InventoryCreatedAt time.Time        `json:"inventoryCreatedAt"`
	TotalItems         int              `json:"totalItems"`
	Warning            []ExpirationItem `json:"warning"`
	Wasted             []ExpirationItem `json:"wasted"`
	Summary            WasteCounts      `json:"summary"`
}

// CheckExpiration runs the classification for one of the user's
// inventories against the current time.
func (s *InventoryService) CheckExpiration(ctx context.Context, userID, inventoryID uint) (*ExpirationReport, error) {
	inventory, err := s.getOwned(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}

	warning, wasted, counts := ClassifyInventory(inventory.Items, inventory.CreatedAt, time.Now())
	return &ExpirationReport{
		InventoryCreatedAt: inventory.CreatedAt,
		TotalItems:         counts.Total,
		Warning:            warning,
		Wasted:             wasted,
		Summary:            counts,
	}, nil
}

// LatestWasteCounts classifies the user's most recently created inventory
// for the impact report. No inventory at all counts as empty.
func (s *InventoryService) LatestWasteCounts(ctx context.Context, userID uint, now time.Time) (WasteCounts, error) {
	var inventory models.Inventory
	err := s.db.WithContext(ctx).
		Preload("Items.FoodItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&inventory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WasteCounts{}, nil
		}
		return WasteCounts{}, err
	}

	_, _, counts := ClassifyInventory(inventory.Items, inventory.CreatedAt, now)
	return counts, nil
}

// ---------- CRUD ----------

func (s *InventoryService) List(ctx context.Context, userID uint) ([]models.Inventory, error) {
	var inventories []models.Inventory
	err := s.db.WithContext(ctx).
		Preload("Items.FoodItem").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&inventories).Error
	return inventories, err
}

func (s *InventoryService) getOwned(ctx context.Context, userID, inventoryID uint) (*models.Inventory, error) {
	var inventory models.Inventory
	err := s.db.WithContext(ctx).
		Preload("Items.FoodItem").
		Where("id = ? AND user_id = ?", inventoryID, userID).
		First(&inventory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inventory, nil
}

func (s *InventoryService) Get(ctx context.Context, userID, inventoryID uint) (*models.Inventory, error) {
	return s.getOwned(ctx, userID, inventoryID)
}

func (s *InventoryService) Create(ctx context.Context, userID uint, name string) (*models.Inventory, error) {
	inventory := models.Inventory{UserID: userID, Name: name}
	if err := s.db.WithContext(ctx).Create(&inventory).Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (s *InventoryService) Rename(ctx context.Context, userID, inventoryID uint, name string) (*models.Inventory, error) {
	inventory, err := s.getOwned(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	inventory.Name = name
	if err := s.db.WithContext(ctx).Save(inventory).Error; err != nil {
		return nil, err
	}
	return inventory, nil
}

func (s *InventoryService) Delete(ctx context.Context, userID, inventoryID uint) error {
	inventory, err := s.getOwned(ctx, userID, inventoryID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("inventory_id = ?", inventory.ID).Delete(&models.InventoryItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(inventory).Error
	})
}

func (s *InventoryService) AddItem(ctx context.Context, userID, inventoryID, foodItemID uint) (*models.Inventory, error) {
	inventory, err := s.getOwned(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}

	var food models.FoodItem
	if err := s.db.WithContext(ctx).First(&food, foodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item := models.InventoryItem{InventoryID: inventory.ID, FoodItemID: food.ID}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return s.getOwned(ctx, userID, inventoryID)
}

func (s *InventoryService) RemoveItem(ctx context.Context, userID, inventoryID, itemID uint) (*models.Inventory, error) {
	inventory, err := s.getOwned(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Unscoped().
		Where("id = ? AND inventory_id = ?", itemID, inventory.ID).
		Delete(&models.InventoryItem{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.getOwned(ctx, userID, inventoryID)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
