package models

// Nutrition holds one set of nutrient amounts. The same shape is used for
// per-reference (per 100 g) records, scaled actuals, meal totals and daily
// totals. Calories in kcal, sodium/potassium/calcium/iron in mg, the rest in
// grams.
type Nutrition struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Fiber     float64 `json:"fiber"`
	Sugar     float64 `json:"sugar"`
	Sodium    float64 `json:"sodium"`
	Potassium float64 `json:"potassium"`
	Calcium   float64 `json:"calcium"`
	Iron      float64 `json:"iron"`
}

// Add returns the field-by-field sum of n and other.
func (n Nutrition) Add(other Nutrition) Nutrition {
	return Nutrition{
		Calories:  n.Calories + other.Calories,
		Protein:   n.Protein + other.Protein,
		Carbs:     n.Carbs + other.Carbs,
		Fat:       n.Fat + other.Fat,
		Fiber:     n.Fiber + other.Fiber,
		Sugar:     n.Sugar + other.Sugar,
		Sodium:    n.Sodium + other.Sodium,
		Potassium: n.Potassium + other.Potassium,
		Calcium:   n.Calcium + other.Calcium,
		Iron:      n.Iron + other.Iron,
	}
}

// GoalProgress compares one nutrient's daily total against its target.
// Percentage is a whole number and may exceed 100; Remaining never goes
// negative.
type GoalProgress struct {
	Target     float64 `json:"target"`
	Actual     float64 `json:"actual"`
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
}

// GoalProgressSet covers the four tracked nutrients.
type GoalProgressSet struct {
	Calories GoalProgress `gorm:"embedded;embeddedPrefix:prog_cal_" json:"calories"`
	Protein  GoalProgress `gorm:"embedded;embeddedPrefix:prog_prot_" json:"protein"`
	Carbs    GoalProgress `gorm:"embedded;embeddedPrefix:prog_carb_" json:"carbs"`
	Fat      GoalProgress `gorm:"embedded;embeddedPrefix:prog_fat_" json:"fat"`
}
