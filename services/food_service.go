package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db  *gorm.DB
	rek *RekognitionService
	ai  *GeminiService
}

func NewFoodService(db *gorm.DB, rek *RekognitionService, ai *GeminiService) *FoodService {
	return &FoodService{db: db, rek: rek, ai: ai}
}

// ---------- Catalog ----------

type FoodListPage struct {
	Items      []models.FoodItem `json:"foodItems"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int64             `json:"total"`
	TotalPages int64             `json:"totalPages"`
}

func (s *FoodService) List(ctx context.Context, tag, search string, page, limit int) (*FoodListPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	q := s.db.WithContext(ctx).Model(&models.FoodItem{})
	if tag != "" {
		q = q.Where("tags LIKE ?", "%"+tag+"%")
	}
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.FoodItem
	if err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &FoodListPage{Items: items, Page: page, Limit: limit, Total: total, TotalPages: totalPages}, nil
}

func (s *FoodService) Get(ctx context.Context, id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func validateFoodItem(item *models.FoodItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.New("name is required")
	}
	if item.ServingQuantity <= 0 || item.ServingWeightGrams <= 0 {
		return errors.New("serving_quantity and serving_weight_grams must be positive")
	}
	n := item.Nutrients
	for _, v := range []float64{
		n.Calories, n.Protein, n.Carbohydrate, n.FatTotal,
		n.Fiber, n.Sodium, n.Cholesterol, n.Potassium,
		n.VitaminA, n.VitaminC, n.VitaminD, n.Calcium, n.Iron, n.Magnesium,
	} {
		if v < 0 {
			return errors.New("nutrient values must be non-negative")
		}
	}
	return nil
}

func (s *FoodService) Create(ctx context.Context, userID uint, item *models.FoodItem) (*models.FoodItem, error) {
	if err := validateFoodItem(item); err != nil {
		return nil, err
	}
	item.CreatedBy = userID
	if item.Source == "" {
		item.Source = "User"
	}
	if item.MetricServingAmount == 0 {
		item.MetricServingAmount = 100
	}
	if item.MetricServingUnit == "" {
		item.MetricServingUnit = "g"
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FoodService) Update(ctx context.Context, id uint, updated *models.FoodItem) (*models.FoodItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateFoodItem(updated); err != nil {
		return nil, err
	}

	item.Name = updated.Name
	item.Description = updated.Description
	item.ServingQuantity = updated.ServingQuantity
	item.ServingUnit = updated.ServingUnit
	item.ServingWeightGrams = updated.ServingWeightGrams
	item.Nutrients = updated.Nutrients
	item.ExpirationHours = updated.ExpirationHours
	item.ImageURL = updated.ImageURL
	item.Tags = updated.Tags
	item.Allergens = updated.Allergens

	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FoodService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.FoodItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- OCR extraction ----------

type ExtractionResult struct {
	OCRText string         `json:"ocr_text"`
	Draft   *FoodItemDraft `json:"draft"` // nil when the AI output was unparseable
	Parsed  bool           `json:"parsed"`
}

// ExtractFromImage runs label OCR and asks the AI to structure the result
// into a food item draft. Unparseable AI output degrades to a partial
// result carrying only the OCR text; it never fails the request.
func (s *FoodService) ExtractFromImage(ctx context.Context, base64Image string) (*ExtractionResult, error) {
	if s.rek == nil {
		return nil, errors.New("label extraction is not configured")
	}
	lines, err := s.rek.DetectTextLines(ctx, base64Image)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no text detected in image")
	}
	text := strings.Join(lines, "\n")

	draft, err := s.ai.StructureFoodItem(ctx, text)
	if err != nil {
		return nil, err
	}
	return &ExtractionResult{OCRText: text, Draft: draft, Parsed: draft != nil}, nil
}
