package routes

import (
	"strings"

	"github.com/BugHunter-Coder/fasting-friend/config"
	"github.com/BugHunter-Coder/fasting-friend/controllers"
	"github.com/BugHunter-Coder/fasting-friend/middlewares"
	"github.com/BugHunter-Coder/fasting-friend/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}

func SetupRouter(hub *services.RealtimeHub, push *services.PushService, timer *services.TimerService) *gin.Engine {
	registerValidators()

	db := config.DB

	fastCtl := controllers.NewFastController(services.NewFastService(db, timer))
	statsCtl := controllers.NewStatsController(services.NewStatsService(db))
	mealCtl := controllers.NewMealController(services.NewMealService(db))
	weightCtl := controllers.NewWeightController(services.NewWeightService(db))
	hydrationCtl := controllers.NewHydrationController(services.NewHydrationService(db))
	healthCtl := controllers.NewHealthController(services.NewHealthSyncService(db, config.GoogleFitSyncURL()))
	deviceCtl := controllers.NewDeviceController(push)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Everything below requires a session
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.POST("/devices", deviceCtl.Register)
			user.POST("/notifications/toggle", deviceCtl.ToggleNotifications)
		}

		fasts := api.Group("/fasts")
		{
			fasts.POST("", fastCtl.Start)
			fasts.GET("", fastCtl.List)
			fasts.GET("/active", fastCtl.Active)
			fasts.PATCH("/:id/start-time", fastCtl.AdjustStartTime)
			fasts.POST("/:id/end", fastCtl.End)
			fasts.DELETE("/:id", fastCtl.Delete)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/dashboard", statsCtl.Dashboard)
			stats.GET("/insights", statsCtl.Insights)
			stats.GET("/quote", statsCtl.DailyQuote)
		}

		meals := api.Group("/meals")
		{
			meals.POST("", mealCtl.Log)
			meals.GET("", mealCtl.List)
			meals.GET("/days", mealCtl.ListDays)
			meals.DELETE("/:id", mealCtl.Delete)
		}

		weights := api.Group("/weights")
		{
			weights.POST("", weightCtl.Log)
			weights.GET("", weightCtl.List)
			weights.DELETE("/:id", weightCtl.Delete)
		}

		hydration := api.Group("/hydration")
		{
			hydration.GET("/today", hydrationCtl.Today)
			hydration.POST("/adjust", hydrationCtl.Adjust)
		}

		health := api.Group("/health")
		{
			health.POST("/healthkit/connect", healthCtl.ConnectHealthKit)
			health.POST("/healthkit/disconnect", healthCtl.DisconnectHealthKit)
			health.POST("/healthkit/sync", healthCtl.SyncHealthKit)
			health.POST("/googlefit/connect", healthCtl.ConnectGoogleFit)
			health.POST("/googlefit/disconnect", healthCtl.DisconnectGoogleFit)
			health.POST("/googlefit/sync", healthCtl.SyncGoogleFit)
			health.GET("/snapshots", healthCtl.ListSnapshots)
		}

		api.GET("/ws", realtimeCtl.LiveWS)

		admin := api.Group("/admin")
		admin.Use(middlewares.AdminMiddleware())
		{
			admin.GET("/users", controllers.ListUsers)
		}
	}

	return r
}
