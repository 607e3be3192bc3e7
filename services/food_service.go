package services

import (
	"github.com/adangerfield1026/Capstone/logger"
	"github.com/adangerfield1026/Capstone/models"
)

// NutritionSource is one tier of the food lookup chain. Both the external
// catalog and the local cache satisfy it.
type NutritionSource interface {
	Search(query string, limit int) ([]models.FoodItem, error)
	NutritionPer100g(foodID string) (*models.FoodItem, error)
}

// CachingSource is a NutritionSource that can also store lookups for later
// offline use. The local catalog is one.
type CachingSource interface {
	NutritionSource
	Cache(item models.FoodItem) error
}

// FoodService chains a primary external source with a local fallback.
// Catalog failures (not found, rate limited, network) are recovered through
// the fallback and logged; they never fail the user action on their own.
type FoodService struct {
	primary  NutritionSource
	fallback CachingSource
}

func NewFoodService(primary NutritionSource, fallback CachingSource) *FoodService {
	return &FoodService{primary: primary, fallback: fallback}
}

func (s *FoodService) Search(query string, limit int) ([]models.FoodItem, error) {
	items, err := s.primary.Search(query, limit)
	if err == nil {
		return items, nil
	}
	logger.Warn("catalog search failed, using local fallback", "query", query, "err", err)
	return s.fallback.Search(query, limit)
}

// NutritionPer100g resolves the per-reference record for a food. Successful
// external lookups are cached locally so the fallback tier keeps growing.
func (s *FoodService) NutritionPer100g(foodID string) (*models.FoodItem, error) {
	item, err := s.primary.NutritionPer100g(foodID)
	if err == nil {
		if cacheErr := s.fallback.Cache(*item); cacheErr != nil {
			logger.Warn("failed to cache food item", "food_id", foodID, "err", cacheErr)
		}
		return item, nil
	}
	logger.Warn("catalog lookup failed, using local fallback", "food_id", foodID, "err", err)
	return s.fallback.NutritionPer100g(foodID)
}

// Preview returns the scaled nutrition for an amount without logging it.
func (s *FoodService) Preview(foodID string, amount float64, unit string) (*models.FoodEntry, error) {
	grams, ok := gramEquivalents[unit]
	if !ok || !finitePositive(amount) {
		return nil, ErrValidation
	}
	item, err := s.NutritionPer100g(foodID)
	if err != nil {
		return nil, err
	}
	actual, err := ScaleNutrition(item.PerRef, amount*grams, ReferenceAmountGrams)
	if err != nil {
		return nil, err
	}
	return &models.FoodEntry{
		FoodID: item.CatalogID,
		Name:   item.Label,
		Amount: amount,
		Unit:   unit,
		PerRef: item.PerRef,
		Actual: actual,
	}, nil
}
