package models

import "gorm.io/gorm"

// FoodItem is a locally cached catalog entry with its per-100 g nutrition.
// Rows come from successful external lookups and from baked-in fixtures, and
// serve as the fallback tier when the external catalog is unavailable.
type FoodItem struct {
	gorm.Model
	CatalogID string `gorm:"type:varchar(255);uniqueIndex;not null" json:"id"`
	Label     string `gorm:"not null" json:"label"`
	Category  string `json:"category,omitempty"`

	PerRef Nutrition `gorm:"embedded;embeddedPrefix:ref_" json:"nutrition_per_100g"`
}
