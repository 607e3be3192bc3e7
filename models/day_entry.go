package models

import (
	"time"

	"gorm.io/gorm"
)

// DayEntry is the per-user, per-calendar-day aggregate. One row per
// (user_id, date); Date is always midnight UTC.
type DayEntry struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_day_entries_user_date;not null" json:"user_id"`
	Date   time.Time `gorm:"uniqueIndex:idx_day_entries_user_date;not null" json:"date"`

	Meals    []Meal          `json:"meals"`
	Totals   Nutrition       `gorm:"embedded;embeddedPrefix:total_" json:"daily_totals"`
	Progress GoalProgressSet `gorm:"embedded" json:"goal_progress"`
}

// One Meal slot (breakfast/lunch/dinner/snack). At most one per type per day;
// a later submit for the same type replaces the earlier meal wholesale.
type Meal struct {
	gorm.Model
	DayEntryID uint   `gorm:"index;not null" json:"-"`
	Type       string `gorm:"size:16;not null" json:"type"`
	Name       string `json:"name,omitempty"`

	Foods  []FoodEntry `json:"foods"`
	Totals Nutrition   `gorm:"embedded;embeddedPrefix:total_" json:"meal_totals"`
}

// FoodEntry snapshots one logged food: the per-100 g reference record and the
// actual record scaled to the logged amount. Entries live and die with their
// meal.
type FoodEntry struct {
	gorm.Model
	MealID uint   `gorm:"index;not null" json:"-"`
	FoodID string `gorm:"type:varchar(255);not null" json:"food_id"`
	Name   string `json:"name"`

	Amount float64 `json:"amount"`
	Unit   string  `gorm:"size:16" json:"unit"`

	PerRef Nutrition `gorm:"embedded;embeddedPrefix:ref_" json:"nutrition_per_100g"`
	Actual Nutrition `gorm:"embedded;embeddedPrefix:actual_" json:"actual_nutrition"`

	AddedAt time.Time `json:"added_at"`
}
