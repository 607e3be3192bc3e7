package services

import (
	"errors"
	"math"

	"github.com/adangerfield1026/Capstone/models"
	"github.com/adangerfield1026/Capstone/utils"

	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// GetGoals returns the user's daily targets, or a zero-valued goal when none
// are stored yet. A zero target makes every progress percentage 0.
func (s *GoalService) GetGoals(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailyGoal{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpsertGoals stores targets and rederives the macro percentages. Percentages
// are recomputed here and only here; they are never taken from the caller.
func (s *GoalService) UpsertGoals(userID uint, calories, protein, carbs, fat, fiber float64) (*models.DailyGoal, error) {
	for _, v := range []float64{calories, protein, carbs, fat, fiber} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrValidation
		}
	}

	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	goal.UserID = userID
	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	goal.Fiber = fiber
	goal.ProteinPct, goal.CarbsPct, goal.FatPct = ComputeMacroPercentages(protein, carbs, fat, calories)

	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// ComputeMacroPercentages derives the share of daily calories each macro
// target represents (protein/carbs 4 kcal per g, fat 9). All zero when the
// calorie target is zero.
func ComputeMacroPercentages(protein, carbs, fat, dailyCalories float64) (proteinPct, carbsPct, fatPct float64) {
	if dailyCalories <= 0 {
		return 0, 0, 0
	}
	proteinPct = math.Round(protein * utils.KcalPerGramProtein / dailyCalories * 100)
	carbsPct = math.Round(carbs * utils.KcalPerGramCarbs / dailyCalories * 100)
	fatPct = math.Round(fat * utils.KcalPerGramFat / dailyCalories * 100)
	return proteinPct, carbsPct, fatPct
}
