package controllers

import (
	"net/http"
	"strconv"

	"github.com/adangerfield1026/Capstone/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// GET /food/search?q=apple&limit=20
func (f *FoodController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := f.foods.Search(q, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /food/:id/preview?amount=150&unit=g — scaled nutrition without logging.
func (f *FoodController) Preview(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "100"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	unit := c.DefaultQuery("unit", "g")

	entry, err := f.foods.Preview(c.Param("id"), amount, unit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
