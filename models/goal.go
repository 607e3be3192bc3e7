package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds each user's daily nutrient-intake targets. The *Pct fields
// are derived from the gram targets (4 kcal/g protein and carbs, 9 kcal/g fat)
// and recomputed whenever targets or calories change — never edited directly.
type DailyGoal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories float64 `json:"calories"` // e.g. 2200 kcal
	Protein  float64 `json:"protein"`  // e.g. 120 g
	Carbs    float64 `json:"carbs"`    // e.g. 275 g
	Fat      float64 `json:"fat"`      // e.g. 70 g
	Fiber    float64 `json:"fiber"`    // e.g. 30 g

	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}
