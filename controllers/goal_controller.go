package controllers

import (
	"net/http"
	"time"

	"github.com/adangerfield1026/Capstone/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	goals *services.GoalService
	days  *services.DayEntryService
}

func NewGoalController(goals *services.GoalService, days *services.DayEntryService) *GoalController {
	return &GoalController{goals: goals, days: days}
}

// GET /goals — the user's targets plus today's progress against them.
func (g *GoalController) GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, err := g.goals.GetGoals(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	day, err := g.days.GetDailySummary(userID, time.Now().UTC())
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goal, "progress": day.Progress})
}

type GoalInput struct {
	Calories float64  `json:"calories" binding:"required"`
	Protein  float64  `json:"protein" binding:"required"`
	Carbs    float64  `json:"carbs" binding:"required"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
}

// PUT /goals — upserts targets; macro percentages are rederived server-side.
func (g *GoalController) UpdateGoals(c *gin.Context) {
	var req GoalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fat, fiber := 0.0, 0.0
	if req.Fat != nil {
		fat = *req.Fat
	}
	if req.Fiber != nil {
		fiber = *req.Fiber
	}

	goal, err := g.goals.UpsertGoals(c.GetUint("userID"), req.Calories, req.Protein, req.Carbs, fat, fiber)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
