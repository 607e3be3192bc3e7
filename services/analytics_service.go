package services

import (
	"math"
	"time"
)

// AnalyticsService summarizes stored day entries over a date range — the
// weekly progress view is this with a 7-day window.
type AnalyticsService struct {
	entries *DayEntryService
	goals   *GoalService
}

func NewAnalyticsService(entries *DayEntryService, goals *GoalService) *AnalyticsService {
	return &AnalyticsService{entries: entries, goals: goals}
}

type NutrAvg struct {
	AvgConsumed float64 `json:"avg_consumed"`
	AvgGoal     float64 `json:"avg_goal,omitempty"`
	AvgPercent  float64 `json:"avg_percent,omitempty"`
}

type RangeSummary struct {
	From        string             `json:"from"`
	To          string             `json:"to"`
	DaysCounted int                `json:"days_counted"`
	Macros      map[string]NutrAvg `json:"macros"` // calories, protein, carbs, fat
	Micros      map[string]NutrAvg `json:"micros"` // fiber, sugar, sodium
}

// Summary averages daily totals against the current goal targets. Days with
// no entry are simply not counted.
func (s *AnalyticsService) Summary(userID uint, from, to time.Time) (*RangeSummary, error) {
	entries, err := s.entries.GetRange(userID, from, to)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.GetGoals(userID)
	if err != nil {
		return nil, err
	}

	out := &RangeSummary{
		From:        DayStart(from).Format("2006-01-02"),
		To:          DayStart(to).Format("2006-01-02"),
		DaysCounted: len(entries),
		Macros:      map[string]NutrAvg{},
		Micros:      map[string]NutrAvg{},
	}
	if len(entries) == 0 {
		return out, nil
	}

	var cals, prot, carbs, fat, fiber, sugar, sodium float64
	for _, e := range entries {
		cals += e.Totals.Calories
		prot += e.Totals.Protein
		carbs += e.Totals.Carbs
		fat += e.Totals.Fat
		fiber += e.Totals.Fiber
		sugar += e.Totals.Sugar
		sodium += e.Totals.Sodium
	}

	n := float64(len(entries))
	avg := func(sum, target float64) NutrAvg {
		a := NutrAvg{AvgConsumed: round2(sum / n), AvgGoal: target}
		if target > 0 {
			a.AvgPercent = math.Round(a.AvgConsumed / target * 100)
		}
		return a
	}

	out.Macros["calories"] = avg(cals, goal.Calories)
	out.Macros["protein"] = avg(prot, goal.Protein)
	out.Macros["carbs"] = avg(carbs, goal.Carbs)
	out.Macros["fat"] = avg(fat, goal.Fat)
	out.Micros["fiber"] = avg(fiber, goal.Fiber)
	out.Micros["sugar"] = avg(sugar, 0)
	out.Micros["sodium"] = avg(sodium, 0)
	return out, nil
}
