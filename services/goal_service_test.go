package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMacroPercentages(t *testing.T) {
	cases := []struct {
		name                         string
		protein, carbs, fat, cals    float64
		wantProt, wantCarbs, wantFat float64
	}{
		// 150g*4 / 2000 = 30%, 250g*4 / 2000 = 50%, 44g*9 / 2000 = 19.8 → 20%
		{"standard split", 150, 250, 44, 2000, 30, 50, 20},
		{"zero calories yields zero percentages", 150, 250, 44, 0, 0, 0, 0},
		{"zero targets", 0, 0, 0, 2000, 0, 0, 0},
		// 120*4/2200=21.8→22, 275*4/2200=50, 70*9/2200=28.6→29
		{"defaults-like goals", 120, 275, 70, 2200, 22, 50, 29},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prot, carbs, fat := ComputeMacroPercentages(tc.protein, tc.carbs, tc.fat, tc.cals)
			assert.Equal(t, tc.wantProt, prot)
			assert.Equal(t, tc.wantCarbs, carbs)
			assert.Equal(t, tc.wantFat, fat)
		})
	}
}
