package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dentaldesk/clinic-queue/internal/clinic"
	"github.com/dentaldesk/clinic-queue/internal/config"
	"github.com/dentaldesk/clinic-queue/internal/handlers"
	"github.com/dentaldesk/clinic-queue/internal/middleware"
	"github.com/dentaldesk/clinic-queue/internal/notify"
	ucQueue "github.com/dentaldesk/clinic-queue/internal/usecase/queue"
)

func RegisterRoutes(r *gin.Engine, store *clinic.Store, dispatcher *notify.Dispatcher, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES
	// ======================================================
	checkInUC := ucQueue.NewCheckIn(store, dispatcher)
	queueStatusUC := ucQueue.NewQueueStatus(store)
	changeStatusUC := ucQueue.NewChangeStatus(store, dispatcher)
	completeVisitUC := ucQueue.NewCompleteVisit(store)
	reminderUC := ucQueue.NewFollowupReminder(store, dispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(store, cfg)
	publicHandler := handlers.NewPublicHandler(store, checkInUC, queueStatusUC)
	queueHandler := handlers.NewQueueHandler(store, changeStatusUC, completeVisitUC)
	patientHandler := handlers.NewPatientHandler(store)
	followupHandler := handlers.NewFollowupHandler(store, reminderUC)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/doctors", publicHandler.ListDoctors)
			publicAPI.POST("/checkin", publicHandler.CheckIn)
			publicAPI.POST("/appointments", publicHandler.BookAppointment)
			publicAPI.GET("/queue/:token", publicHandler.QueueStatus)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// DOCTOR DASHBOARD
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)

			secured.GET("/me/queue", queueHandler.ListToday)
			secured.PATCH("/me/queue/:id/status", queueHandler.ChangeStatus)
			secured.POST("/me/queue/:id/visit", queueHandler.CompleteVisit)
			secured.GET("/me/summary", queueHandler.Summary)

			secured.GET("/me/patients/:id", patientHandler.Get)
			secured.GET("/me/patients/:id/visits", patientHandler.Visits)
			secured.PATCH("/me/visits/:id/payment", patientHandler.UpdatePayment)

			secured.GET("/me/followups", followupHandler.List)
			secured.POST("/me/followups/:patientId/remind", followupHandler.Remind)
			secured.GET("/me/notifications", followupHandler.Notifications)
		}
	}
}
