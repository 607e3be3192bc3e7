package services

import (
	"errors"
	"strings"

	"github.com/adangerfield1026/Capstone/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocalCatalog is the fallback nutrition source: food_items rows cached from
// earlier external lookups plus a small set of baked-in staples, so a catalog
// outage never fails a meal log.
type LocalCatalog struct {
	db *gorm.DB
}

func NewLocalCatalog(db *gorm.DB) *LocalCatalog {
	return &LocalCatalog{db: db}
}

// fixtureFoods are always available, even on an empty database. Per 100 g.
var fixtureFoods = []models.FoodItem{
	{CatalogID: "fixture_chicken_breast", Label: "Chicken Breast", Category: "Generic foods",
		PerRef: models.Nutrition{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Potassium: 256, Sodium: 74}},
	{CatalogID: "fixture_white_rice", Label: "White Rice, cooked", Category: "Generic foods",
		PerRef: models.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3, Fiber: 0.4, Sodium: 1}},
	{CatalogID: "fixture_egg", Label: "Egg, whole", Category: "Generic foods",
		PerRef: models.Nutrition{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Sodium: 124, Calcium: 50, Iron: 1.2}},
	{CatalogID: "fixture_banana", Label: "Banana", Category: "Generic foods",
		PerRef: models.Nutrition{Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fiber: 2.6, Sugar: 12.2, Potassium: 358}},
	{CatalogID: "fixture_whole_milk", Label: "Milk, whole", Category: "Generic foods",
		PerRef: models.Nutrition{Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, Sugar: 5.1, Sodium: 43, Calcium: 113}},
	{CatalogID: "fixture_oats", Label: "Oats, rolled", Category: "Generic foods",
		PerRef: models.Nutrition{Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, Fiber: 10.6, Iron: 4.7}},
}

func (c *LocalCatalog) Search(query string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 {
		limit = 20
	}
	var items []models.FoodItem
	if err := c.db.
		Where("label ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	for _, f := range fixtureFoods {
		if len(items) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(f.Label), q) && !containsID(items, f.CatalogID) {
			items = append(items, f)
		}
	}
	return items, nil
}

func (c *LocalCatalog) NutritionPer100g(foodID string) (*models.FoodItem, error) {
	var item models.FoodItem
	err := c.db.Where("catalog_id = ?", foodID).First(&item).Error
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	for i := range fixtureFoods {
		if fixtureFoods[i].CatalogID == foodID {
			f := fixtureFoods[i]
			return &f, nil
		}
	}
	return nil, ErrFoodNotFound
}

// Cache upserts a successful external lookup so it is available offline.
func (c *LocalCatalog) Cache(item models.FoodItem) error {
	item.ID = 0
	return c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "catalog_id"}},
		UpdateAll: true,
	}).Create(&item).Error
}

func containsID(items []models.FoodItem, id string) bool {
	for _, it := range items {
		if it.CatalogID == id {
			return true
		}
	}
	return false
}
