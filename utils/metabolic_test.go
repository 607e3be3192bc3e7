package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBMR_Male(t *testing.T) {
	// Mifflin-St Jeor: 10*75 + 6.25*180 - 5*34 + 5 = 1710
	bmr, err := ComputeBMR(75, 180, 34, "male")
	require.NoError(t, err)
	assert.Equal(t, 1710.0, bmr)
}

func TestComputeBMR_FemaleAndOther(t *testing.T) {
	// Same inputs minus 166 relative to male: -161 instead of +5.
	female, err := ComputeBMR(75, 180, 34, "female")
	require.NoError(t, err)
	assert.Equal(t, 1544.0, female)

	// Any non-"male" gender gets the -161 constant.
	other, err := ComputeBMR(75, 180, 34, "other")
	require.NoError(t, err)
	assert.Equal(t, female, other)
}

func TestComputeBMR_InvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		w, h float64
		age  int
	}{
		{"zero weight", 0, 180, 34},
		{"negative height", 75, -180, 34},
		{"negative age", 75, 180, -1},
		{"NaN weight", math.NaN(), 180, 34},
		{"infinite height", 75, math.Inf(1), 34},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeBMR(tc.w, tc.h, tc.age, "male")
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestComputeTDEE_Multipliers(t *testing.T) {
	cases := []struct {
		level string
		want  float64
	}{
		{"sedentary", 2052},   // 1710 * 1.2
		{"light", 2351},       // 1710 * 1.375 = 2351.25
		{"moderate", 2651},    // 1710 * 1.55 = 2650.5
		{"active", 2950},      // 1710 * 1.725 = 2949.75
		{"very_active", 3249}, // 1710 * 1.9
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			tdee, err := ComputeTDEE(1710, tc.level)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tdee)
		})
	}
}

func TestComputeTDEE_UnknownLevelFallsBackToSedentary(t *testing.T) {
	tdee, err := ComputeTDEE(1710, "couch_potato")
	require.NoError(t, err)
	assert.Equal(t, 2052.0, tdee)
}

func TestComputeTDEE_InvalidBMR(t *testing.T) {
	_, err := ComputeTDEE(0, "moderate")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ComputeTDEE(math.NaN(), "moderate")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputeBMI(t *testing.T) {
	// 75 kg at 1.80 m → 23.15
	bmi, err := ComputeBMI(75, 1.80)
	require.NoError(t, err)
	assert.InDelta(t, 23.15, bmi, 0.01)

	_, err = ComputeBMI(75, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal", BMICategory(18.5))
	assert.Equal(t, "Normal", BMICategory(24.9))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Overweight", BMICategory(29.9))
	assert.Equal(t, "Obese", BMICategory(30))
}

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 68.04, LbsToKg(150), 0.01)
	assert.InDelta(t, 177.8, InchesToCm(70), 0.01)
}
