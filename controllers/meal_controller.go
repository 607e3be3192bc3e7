package controllers

import (
	"net/http"
	"time"

	"github.com/adangerfield1026/Capstone/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	days *services.DayEntryService
}

func NewMealController(days *services.DayEntryService) *MealController {
	return &MealController{days: days}
}

// parseDate reads the date query param (YYYY-MM-DD), defaulting to today.
func parseDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now().UTC(), true
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// PUT /meals?date=YYYY-MM-DD — logs a meal; an existing meal of the same
// type on that day is replaced wholesale.
func (m *MealController) LogMeal(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	var req services.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := m.days.AddOrReplaceMeal(c.GetUint("userID"), date, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// GET /meals/summary?date=YYYY-MM-DD — the day's totals and goal progress.
// Always returns an entry; days without logs get a zeroed one carrying the
// current goal targets.
func (m *MealController) GetDailySummary(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	day, err := m.days.GetDailySummary(c.GetUint("userID"), date)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}
