package services

import (
	"math"
	"testing"

	"github.com/adangerfield1026/Capstone/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleNutrition_ChickenBreast150g(t *testing.T) {
	// 165 kcal / 31 g protein / 3.6 g fat per 100 g, scaled to 150 g.
	ref := models.Nutrition{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}

	actual, err := ScaleNutrition(ref, 150, 100)
	require.NoError(t, err)

	assert.Equal(t, 248.0, actual.Calories)
	assert.Equal(t, 46.5, actual.Protein)
	assert.Equal(t, 0.0, actual.Carbs)
	assert.Equal(t, 5.4, actual.Fat)
}

func TestScaleNutrition_Linearity(t *testing.T) {
	ref := models.Nutrition{Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fiber: 2.6, Sugar: 12.2}

	single, err := ScaleNutrition(ref, 100, 100)
	require.NoError(t, err)
	double, err := ScaleNutrition(ref, 200, 100)
	require.NoError(t, err)

	// Doubling the amount doubles every field, within rounding tolerance.
	assert.InDelta(t, 2*single.Calories, double.Calories, 1.0)
	assert.InDelta(t, 2*single.Protein, double.Protein, 0.1)
	assert.InDelta(t, 2*single.Carbs, double.Carbs, 0.1)
	assert.InDelta(t, 2*single.Sugar, double.Sugar, 0.1)
}

func TestScaleNutrition_InvalidAmounts(t *testing.T) {
	ref := models.Nutrition{Calories: 100}

	cases := []struct {
		name            string
		amount, refAmnt float64
	}{
		{"zero amount", 0, 100},
		{"negative amount", -5, 100},
		{"NaN amount", math.NaN(), 100},
		{"infinite amount", math.Inf(1), 100},
		{"zero reference", 100, 0},
		{"negative reference", 100, -100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ScaleNutrition(ref, tc.amount, tc.refAmnt)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func mealWith(mealType string, actuals ...models.Nutrition) models.Meal {
	m := models.Meal{Type: mealType}
	for _, a := range actuals {
		m.Foods = append(m.Foods, models.FoodEntry{Actual: a})
	}
	return m
}

func TestRecomputeMealTotals_SumsActuals(t *testing.T) {
	meal := mealWith("lunch",
		models.Nutrition{Calories: 248, Protein: 46.5, Fat: 5.4},
		models.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3},
	)

	totals := RecomputeMealTotals(&meal)

	assert.Equal(t, 378.0, totals.Calories)
	assert.InDelta(t, 49.2, totals.Protein, 1e-9)
	assert.InDelta(t, 28.2, totals.Carbs, 1e-9)
	assert.InDelta(t, 5.7, totals.Fat, 1e-9)
	assert.Equal(t, totals, meal.Totals)
}

func TestRecomputeMealTotals_EmptyMealIsZero(t *testing.T) {
	meal := models.Meal{Type: "snack", Totals: models.Nutrition{Calories: 999}}
	totals := RecomputeMealTotals(&meal)
	assert.Equal(t, models.Nutrition{}, totals)
}

func TestRecomputeMealTotals_Idempotent(t *testing.T) {
	meal := mealWith("dinner",
		models.Nutrition{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11},
		models.Nutrition{Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3},
	)

	first := RecomputeMealTotals(&meal)
	second := RecomputeMealTotals(&meal)

	// Full recompute from the entries: no accumulation drift.
	assert.Equal(t, first, second)
}

func TestRecomputeDailyTotals_Additivity(t *testing.T) {
	day := models.DayEntry{Meals: []models.Meal{
		mealWith("breakfast", models.Nutrition{Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9}),
		mealWith("lunch", models.Nutrition{Calories: 248, Protein: 46.5, Fat: 5.4}),
		mealWith("dinner", models.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3}),
	}}
	for i := range day.Meals {
		RecomputeMealTotals(&day.Meals[i])
	}

	totals := RecomputeDailyTotals(&day)

	var sum float64
	for _, m := range day.Meals {
		sum += m.Totals.Calories
	}
	assert.Equal(t, sum, totals.Calories)
	assert.Equal(t, 767.0, totals.Calories)
}

func TestEvaluateProgress_Scenario(t *testing.T) {
	goal := models.DailyGoal{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65}
	totals := models.Nutrition{Calories: 1450, Protein: 95, Carbs: 180, Fat: 45}

	p := EvaluateProgress(totals, goal)

	assert.Equal(t, models.GoalProgress{Target: 2000, Actual: 1450, Percentage: 73, Remaining: 550}, p.Calories)
	assert.Equal(t, 63.0, p.Protein.Percentage)
	assert.Equal(t, 55.0, p.Protein.Remaining)
	assert.Equal(t, 72.0, p.Carbs.Percentage)
	assert.Equal(t, 69.0, p.Fat.Percentage)
}

func TestEvaluateProgress_ZeroTarget(t *testing.T) {
	p := EvaluateProgress(models.Nutrition{Calories: 900, Protein: 50}, models.DailyGoal{})

	// target 0 → percentage 0 regardless of actual, remaining 0.
	assert.Equal(t, 0.0, p.Calories.Percentage)
	assert.Equal(t, 0.0, p.Calories.Remaining)
	assert.Equal(t, 900.0, p.Calories.Actual)
}

func TestEvaluateProgress_OvereatingNotClamped(t *testing.T) {
	goal := models.DailyGoal{Calories: 2000}
	p := EvaluateProgress(models.Nutrition{Calories: 2600}, goal)

	// Percentage exceeds 100; remaining floors at zero, never negative.
	assert.Equal(t, 130.0, p.Calories.Percentage)
	assert.Equal(t, 0.0, p.Calories.Remaining)
}

func TestApplyMeal_ReplacesSameTypeWholesale(t *testing.T) {
	goal := models.DailyGoal{Calories: 2000}
	day := models.DayEntry{}

	ApplyMeal(&day, mealWith("breakfast", models.Nutrition{Calories: 300}), goal)
	require.Equal(t, 300.0, day.Totals.Calories)

	// A second breakfast replaces the first; its foods are discarded, not merged.
	ApplyMeal(&day, mealWith("breakfast", models.Nutrition{Calories: 400}), goal)

	assert.Equal(t, 400.0, day.Totals.Calories)
	require.Len(t, day.Meals, 1)
	assert.Len(t, day.Meals[0].Foods, 1)
	assert.Equal(t, 20.0, day.Progress.Calories.Percentage)
}

func TestApplyMeal_DifferentTypesAccumulate(t *testing.T) {
	goal := models.DailyGoal{Calories: 2000}
	day := models.DayEntry{}

	ApplyMeal(&day, mealWith("breakfast", models.Nutrition{Calories: 300}), goal)
	ApplyMeal(&day, mealWith("lunch", models.Nutrition{Calories: 500}), goal)

	assert.Equal(t, 800.0, day.Totals.Calories)
	assert.Len(t, day.Meals, 2)
}

func TestValidateMealRequest(t *testing.T) {
	valid := MealRequest{Type: "lunch", Items: []FoodEntryRequest{{FoodID: "x", Amount: 150, Unit: "g"}}}
	assert.NoError(t, validateMealRequest(valid))

	cases := []struct {
		name string
		req  MealRequest
	}{
		{"bad meal type", MealRequest{Type: "brunch"}},
		{"bad unit", MealRequest{Type: "lunch", Items: []FoodEntryRequest{{Amount: 100, Unit: "stone"}}}},
		{"amount below minimum", MealRequest{Type: "lunch", Items: []FoodEntryRequest{{Amount: 0.05, Unit: "g"}}}},
		{"amount above maximum", MealRequest{Type: "lunch", Items: []FoodEntryRequest{{Amount: 20000, Unit: "g"}}}},
		{"NaN amount", MealRequest{Type: "lunch", Items: []FoodEntryRequest{{Amount: math.NaN(), Unit: "g"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validateMealRequest(tc.req), ErrValidation)
		})
	}
}
