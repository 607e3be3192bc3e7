package routes

import (
	"github.com/adangerfield1026/Capstone/controllers"
	"github.com/adangerfield1026/Capstone/middlewares"
	"github.com/adangerfield1026/Capstone/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every controller behind the auth middleware. All
// services are constructed once here from the injected DB handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	hub := services.NewRealtimeHub()
	foodSvc := services.NewFoodService(services.NewEdamamService(), services.NewLocalCatalog(db))
	goalSvc := services.NewGoalService(db)
	daySvc := services.NewDayEntryService(db, foodSvc, goalSvc, hub)

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	mealCtl := controllers.NewMealController(daySvc)
	goalCtl := controllers.NewGoalController(goalSvc, daySvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	analyticsCtl := controllers.NewAnalyticsController(services.NewAnalyticsService(daySvc, goalSvc))
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/verify-mfa", authCtl.VerifyMFA)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(db))
	{
		api.GET("/user/profile", userCtl.GetProfile)
		api.PUT("/user/profile", userCtl.UpdateProfile)
		api.GET("/user/metrics", userCtl.GetMetrics)
		api.DELETE("/user", userCtl.DeleteAccount)

		api.PUT("/meals", mealCtl.LogMeal)
		api.GET("/meals/summary", mealCtl.GetDailySummary)

		api.GET("/goals", goalCtl.GetGoals)
		api.PUT("/goals", goalCtl.UpdateGoals)

		api.GET("/food/search", foodCtl.Search)
		api.GET("/food/:id/preview", foodCtl.Preview)

		api.GET("/analytics/summary", analyticsCtl.Summary)

		api.GET("/ws", realtimeCtl.ProgressWS)
	}

	return r
}
