package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/adangerfield1026/Capstone/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DayEntryService owns the read/modify/write cycle around one user's day:
// meal submission, aggregation, goal progress, and the synthesized summary
// for days with no entry.
type DayEntryService struct {
	db    *gorm.DB
	foods *FoodService
	goals *GoalService
	hub   *RealtimeHub
}

func NewDayEntryService(db *gorm.DB, foods *FoodService, goals *GoalService, hub *RealtimeHub) *DayEntryService {
	return &DayEntryService{db: db, foods: foods, goals: goals, hub: hub}
}

type FoodEntryRequest struct {
	FoodID string  `json:"food_id"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type MealRequest struct {
	Type  string             `json:"type"`
	Name  string             `json:"name"`
	Items []FoodEntryRequest `json:"items"`
}

// DayStart truncates to the calendar day at midnight UTC; it is the only
// date representation day entries are keyed by.
func DayStart(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

// AddOrReplaceMeal logs a meal for the given day. A meal already present for
// the same type is replaced wholesale — its foods are discarded, not merged.
// The full aggregation pipeline runs before anything is written back.
func (s *DayEntryService) AddOrReplaceMeal(userID uint, date time.Time, req MealRequest) (*models.DayEntry, error) {
	if err := validateMealRequest(req); err != nil {
		return nil, err
	}

	goal, err := s.goals.GetGoals(userID)
	if err != nil {
		return nil, err
	}

	// Resolve and scale every food before touching the day entry, so a bad
	// item leaves the stored state untouched.
	now := time.Now().UTC()
	foods := make([]models.FoodEntry, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := s.foods.NutritionPer100g(it.FoodID)
		if err != nil {
			return nil, fmt.Errorf("resolve food %s: %w", it.FoodID, err)
		}
		actual, err := ScaleNutrition(item.PerRef, it.Amount*gramEquivalents[it.Unit], ReferenceAmountGrams)
		if err != nil {
			return nil, err
		}
		foods = append(foods, models.FoodEntry{
			FoodID:  item.CatalogID,
			Name:    item.Label,
			Amount:  it.Amount,
			Unit:    it.Unit,
			PerRef:  item.PerRef,
			Actual:  actual,
			AddedAt: now,
		})
	}

	start := DayStart(date)
	day, err := s.findOrCreate(userID, start)
	if err != nil {
		return nil, err
	}

	// Replace semantics: drop the previous meal of this type entirely.
	for i := range day.Meals {
		if day.Meals[i].Type == req.Type {
			old := day.Meals[i]
			if err := s.db.Where("meal_id = ?", old.ID).Delete(&models.FoodEntry{}).Error; err != nil {
				return nil, err
			}
			if err := s.db.Delete(&models.Meal{}, old.ID).Error; err != nil {
				return nil, err
			}
			break
		}
	}

	meal := models.Meal{DayEntryID: day.ID, Type: req.Type, Name: req.Name, Foods: foods}
	RecomputeMealTotals(&meal)
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}

	day, err = s.load(userID, start)
	if err != nil {
		return nil, err
	}

	RefreshDayEntry(day, *goal)
	if err := s.db.Omit(clause.Associations).Save(day).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastProgress(userID, map[string]any{
			"kind":          "progress.updated",
			"date":          start.Format("2006-01-02"),
			"daily_totals":  day.Totals,
			"goal_progress": day.Progress,
		})
	}
	return day, nil
}

// GetDailySummary returns the day's aggregate, or a synthesized all-zero
// entry carrying the user's current goal targets when nothing was logged.
// Never a null result; the synthesized entry is not persisted.
func (s *DayEntryService) GetDailySummary(userID uint, date time.Time) (*models.DayEntry, error) {
	start := DayStart(date)
	day, err := s.load(userID, start)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	goal, err := s.goals.GetGoals(userID)
	if err != nil {
		return nil, err
	}
	empty := &models.DayEntry{UserID: userID, Date: start, Meals: []models.Meal{}}
	RefreshDayEntry(empty, *goal)
	return empty, nil
}

// GetRange returns stored entries between two days inclusive, oldest first.
func (s *DayEntryService) GetRange(userID uint, from, to time.Time) ([]models.DayEntry, error) {
	var entries []models.DayEntry
	err := s.db.
		Preload("Meals.Foods").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, DayStart(from), DayStart(to)).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *DayEntryService) load(userID uint, start time.Time) (*models.DayEntry, error) {
	var day models.DayEntry
	err := s.db.
		Preload("Meals.Foods").
		Where("user_id = ? AND date = ?", userID, start).
		First(&day).Error
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (s *DayEntryService) findOrCreate(userID uint, start time.Time) (*models.DayEntry, error) {
	day, err := s.load(userID, start)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	day = &models.DayEntry{UserID: userID, Date: start}
	if err := s.db.Create(day).Error; err != nil {
		// A concurrent insert for the same (user, date) hit the unique
		// index first; surface it as a conflict, never merge.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEntry
		}
		return nil, err
	}
	return day, nil
}
