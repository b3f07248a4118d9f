package routes

import (
	"unigo_server/controllers"
	"unigo_server/services"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes sets up routes for notifications under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, notificationService *services.NotificationService) {
	controller := controllers.NewNotificationController(notificationService)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()

	notificationRouter.HandleFunc("", controller.GetNotifications).Methods("GET")
	notificationRouter.HandleFunc("/{notificationId}/read", controller.MarkRead).Methods("POST")
	notificationRouter.HandleFunc("/{notificationId}", controller.DeleteNotification).Methods("DELETE")
}
