package services

import (
	"math"

	"github.com/adangerfield1026/Capstone/models"
)

// ReferenceAmountGrams is the serving size catalog nutrition is expressed per.
const ReferenceAmountGrams = 100

// gramEquivalents converts each accepted logging unit to grams before
// scaling. "piece" and "serving" are treated as one reference amount.
var gramEquivalents = map[string]float64{
	"g":       1,
	"ml":      1,
	"oz":      28.35,
	"cup":     240,
	"tbsp":    15,
	"tsp":     5,
	"piece":   100,
	"serving": 100,
}

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

const (
	minAmount = 0.1
	maxAmount = 10000
)

// ScaleNutrition converts a per-reference nutrition record into the record
// for a requested quantity. Calories are rounded to the nearest integer and
// every gram-valued field to one decimal place; aggregation later sums these
// already-rounded values and never re-rounds.
func ScaleNutrition(ref models.Nutrition, amount, referenceAmount float64) (models.Nutrition, error) {
	if !finitePositive(amount) || !finitePositive(referenceAmount) {
		return models.Nutrition{}, ErrInvalidAmount
	}
	f := amount / referenceAmount
	return models.Nutrition{
		Calories:  math.Round(ref.Calories * f),
		Protein:   round1(ref.Protein * f),
		Carbs:     round1(ref.Carbs * f),
		Fat:       round1(ref.Fat * f),
		Fiber:     round1(ref.Fiber * f),
		Sugar:     round1(ref.Sugar * f),
		Sodium:    round1(ref.Sodium * f),
		Potassium: round1(ref.Potassium * f),
		Calcium:   round1(ref.Calcium * f),
		Iron:      round1(ref.Iron * f),
	}, nil
}

// RecomputeMealTotals sums actual nutrition across the meal's foods and
// overwrites meal.Totals. Always a full recompute from the entries, never
// incremental, so repeated calls cannot drift.
func RecomputeMealTotals(meal *models.Meal) models.Nutrition {
	var totals models.Nutrition
	for _, f := range meal.Foods {
		totals = totals.Add(f.Actual)
	}
	meal.Totals = totals
	return totals
}

// RecomputeDailyTotals sums meal totals into the day's totals. Every meal
// must have been refreshed by RecomputeMealTotals first.
func RecomputeDailyTotals(day *models.DayEntry) models.Nutrition {
	var totals models.Nutrition
	for i := range day.Meals {
		totals = totals.Add(day.Meals[i].Totals)
	}
	day.Totals = totals
	return totals
}

// EvaluateProgress compares daily totals against goal targets for the four
// tracked nutrients. Percentage is 0 when the target is 0 and is not clamped
// above 100; remaining never goes negative.
func EvaluateProgress(totals models.Nutrition, goal models.DailyGoal) models.GoalProgressSet {
	return models.GoalProgressSet{
		Calories: nutrientProgress(goal.Calories, totals.Calories),
		Protein:  nutrientProgress(goal.Protein, totals.Protein),
		Carbs:    nutrientProgress(goal.Carbs, totals.Carbs),
		Fat:      nutrientProgress(goal.Fat, totals.Fat),
	}
}

func nutrientProgress(target, actual float64) models.GoalProgress {
	actual = round2(actual)
	p := models.GoalProgress{Target: target, Actual: actual}
	if target > 0 {
		p.Percentage = math.Round(actual / target * 100)
	}
	if rem := target - actual; rem > 0 {
		p.Remaining = rem
	}
	return p
}

// ApplyMeal places meal into the day, replacing wholesale any existing meal
// of the same type (the earlier meal's foods are discarded, not merged), and
// reruns the full aggregation pipeline against goal.
func ApplyMeal(day *models.DayEntry, meal models.Meal, goal models.DailyGoal) {
	RecomputeMealTotals(&meal)

	replaced := false
	for i := range day.Meals {
		if day.Meals[i].Type == meal.Type {
			day.Meals[i] = meal
			replaced = true
			break
		}
	}
	if !replaced {
		day.Meals = append(day.Meals, meal)
	}

	RefreshDayEntry(day, goal)
}

// RefreshDayEntry recomputes every meal's totals, the daily totals, and the
// goal progress, in that order. Invoked before any write is issued; stored
// totals are never edited independently.
func RefreshDayEntry(day *models.DayEntry, goal models.DailyGoal) {
	for i := range day.Meals {
		RecomputeMealTotals(&day.Meals[i])
	}
	RecomputeDailyTotals(day)
	day.Progress = EvaluateProgress(day.Totals, goal)
}

// validateMealRequest rejects bad input before any lookup or mutation.
func validateMealRequest(req MealRequest) error {
	if !mealTypes[req.Type] {
		return ErrValidation
	}
	for _, it := range req.Items {
		if _, ok := gramEquivalents[it.Unit]; !ok {
			return ErrValidation
		}
		if !finitePositive(it.Amount) || it.Amount < minAmount || it.Amount > maxAmount {
			return ErrValidation
		}
	}
	return nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func finitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
