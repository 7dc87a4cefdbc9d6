package routes

import (
	"log"
	"os"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/config"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/controllers"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/middlewares"
	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	db := config.DB

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}
	notifier := services.NewNotificationService(db, hub, push)

	stepStore := services.NewGormStepStore(db)
	healthStore := services.NewGormHealthLogStore(db)
	logSvc := services.NewLogService(stepStore, healthStore)
	tracker := services.NewTrackerService(stepStore, healthStore, notifier)

	sched := services.NewTriggerScheduler(notifier, os.Getenv("DISABLE_EXACT_ALARMS") == "")
	reminderSvc := services.NewReminderService(services.NewGormReminderStore(db), sched)

	// Re-arm triggers for reminders that were still Due at last shutdown.
	if err := reminderSvc.RestorePending(); err != nil {
		log.Printf("could not restore pending reminders: %v", err)
	}

	logCtl := controllers.NewLogController(logSvc)
	reminderCtl := controllers.NewReminderController(reminderSvc)
	stepCtl := controllers.NewStepController(tracker)
	healthCtl := controllers.NewHealthLogController(tracker)
	deviceCtl := controllers.NewDeviceController(push)
	realtimeCtl := controllers.NewRealtimeController(hub)
	devCtl := controllers.NewDevController(push, sched)

	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.GET("/logs", logCtl.GetDailyLogs)

		user.GET("/reminders", reminderCtl.List)
		user.POST("/reminders", reminderCtl.Add)
		user.PUT("/reminders/:id/status", reminderCtl.UpdateStatus)

		user.POST("/steps", stepCtl.RecordSteps)
		user.GET("/steps/today", stepCtl.TodaySteps)
		user.POST("/health-logs", healthCtl.Record)

		user.POST("/devices", deviceCtl.Register)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.GET("/alerts", controllers.ListAlerts)
		user.GET("/ws/alerts", realtimeCtl.AlertsWS)
	}

	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	{
		dev.POST("/push-test", devCtl.PushTest)
		dev.GET("/triggers", devCtl.TriggerStats)
	}

	return r
}
