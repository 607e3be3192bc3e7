package controllers

import (
	"net/http"
	"time"

	"github.com/adangerfield1026/Capstone/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// GET /analytics/summary?from=YYYY-MM-DD&to=YYYY-MM-DD
// Defaults to the trailing 7 days — the weekly progress view.
func (a *AnalyticsController) Summary(c *gin.Context) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -6)

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date"})
			return
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date"})
			return
		}
		to = t
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' is before 'from'"})
		return
	}

	out, err := a.analytics.Summary(c.GetUint("userID"), from, to)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
