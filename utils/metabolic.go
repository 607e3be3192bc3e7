package utils

import (
	"errors"
	"math"
)

// ErrInvalidInput marks non-finite or out-of-range metabolic inputs.
var ErrInvalidInput = errors.New("invalid metabolic input")

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// sedentary is the documented fallback for unknown activity levels.
const fallbackMultiplier = 1.2

const (
	LbsPerKg  = 0.453592
	CmPerInch = 2.54

	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// LbsToKg converts pounds to kilograms.
func LbsToKg(lbs float64) float64 { return lbs * LbsPerKg }

// InchesToCm converts inches to centimeters.
func InchesToCm(in float64) float64 { return in * CmPerInch }

// ComputeBMR estimates basal metabolic rate via Mifflin-St Jeor, rounded to
// the nearest integer. Gender "male" gets the +5 constant; anything else the
// -161 one.
func ComputeBMR(weightKg, heightCm float64, age int, gender string) (float64, error) {
	if !isFinitePositive(weightKg) || !isFinitePositive(heightCm) || age < 0 {
		return 0, ErrInvalidInput
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return math.Round(bmr), nil
}

// ComputeTDEE scales BMR by the activity multiplier, rounded to the nearest
// integer. An unknown activity level falls back to sedentary rather than
// erroring.
func ComputeTDEE(bmr float64, activityLevel string) (float64, error) {
	if !isFinitePositive(bmr) {
		return 0, ErrInvalidInput
	}
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = fallbackMultiplier
	}
	return math.Round(bmr * mult), nil
}

// ComputeBMI expects weight in kilograms and height in meters.
func ComputeBMI(weightKg, heightM float64) (float64, error) {
	if !isFinitePositive(weightKg) || !isFinitePositive(heightM) {
		return 0, ErrInvalidInput
	}
	return weightKg / (heightM * heightM), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
