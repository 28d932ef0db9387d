package routes

import (
	"os"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/pkg/logger"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(log *logger.Logger) *gin.Engine {
	r := gin.Default()

	ai := services.NewGeminiService(os.Getenv("GEMINI_API_KEY"), log)
	hub := services.NewChatHub()

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Warnw("rekognition unavailable, label extraction disabled", "error", err)
	}

	analyticsSvc := services.NewAnalyticsService(config.DB, ai)
	inventorySvc := services.NewInventoryService(config.DB)
	impactSvc := services.NewImpactService(config.DB, analyticsSvc, inventorySvc)
	foodSvc := services.NewFoodService(config.DB, rek, ai)

	foodCtl := controllers.NewFoodController(foodSvc)
	inventoryCtl := controllers.NewInventoryController(inventorySvc)
	analyticsCtl := controllers.NewAnalyticsController(analyticsSvc, impactSvc)
	aiCtl := controllers.NewAIController(ai, hub, log)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.PUT("/health-profile", controllers.UpdateHealthProfile)
			user.POST("/profile-image", controllers.UploadProfileImage)

			user.GET("/food-logs", controllers.ListFoodLogs)
			user.POST("/food-logs", controllers.AddFoodLog)
			user.DELETE("/food-logs/:index", controllers.DeleteFoodLog)

			user.GET("/goals", controllers.GetGoals)
			user.POST("/goals", controllers.CreateGoal)
			user.PUT("/goals/current", controllers.SetCurrentGoal)
			user.PUT("/goals/:index", controllers.UpdateGoal)
			user.DELETE("/goals/:index", controllers.DeleteGoal)
		}

		foods := api.Group("/foods")
		{
			foods.GET("", foodCtl.List)
			foods.POST("", foodCtl.Create)
			foods.POST("/extract", foodCtl.ExtractFromImage)
			foods.GET("/:id", foodCtl.Get)
			foods.PUT("/:id", foodCtl.Update)
			foods.DELETE("/:id", foodCtl.Delete)
		}

		inventories := api.Group("/inventories")
		{
			inventories.GET("", inventoryCtl.List)
			inventories.POST("", inventoryCtl.Create)
			inventories.GET("/:id", inventoryCtl.Get)
			inventories.PUT("/:id", inventoryCtl.Rename)
			inventories.DELETE("/:id", inventoryCtl.Delete)
			inventories.POST("/:id/items", inventoryCtl.AddItem)
			inventories.DELETE("/:id/items/:itemId", inventoryCtl.RemoveItem)
			inventories.GET("/:id/expiration", inventoryCtl.CheckExpiration)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/single-day", analyticsCtl.GetSingleDay)
			analytics.GET("/monthly", analyticsCtl.GetMonthly)
			analytics.GET("/weekly", analyticsCtl.GetWeekly)
			analytics.GET("/sdg-impact", analyticsCtl.GetSdgImpact)
		}

		aiGroup := api.Group("/ai")
		{
			aiGroup.GET("/chat", aiCtl.Chat)
			aiGroup.DELETE("/chat", aiCtl.ResetChat)
			aiGroup.POST("/meal-plan", aiCtl.GenerateMealPlan)
		}
	}

	return r
}
