package routes

import (
	"unigo_server/controllers"
	"unigo_server/services"

	"github.com/gorilla/mux"
)

// RegisterTripRoutes sets up routes for trip operations under /api/trips
func RegisterTripRoutes(r *mux.Router, tripService *services.TripService) {
	controller := controllers.NewTripController(tripService)

	tripRouter := r.PathPrefix("/api/trips").Subrouter()

	tripRouter.HandleFunc("", controller.CreateTrip).Methods("POST")
	tripRouter.HandleFunc("", controller.GetActiveTrips).Methods("GET")
	tripRouter.HandleFunc("/search", controller.SearchTrips).Methods("GET")
	tripRouter.HandleFunc("/user", controller.GetUserTrips).Methods("GET")
	tripRouter.HandleFunc("/cleanup", controller.CleanupExpiredTrips).Methods("POST")
	tripRouter.HandleFunc("/{tripId}", controller.GetTrip).Methods("GET")
	tripRouter.HandleFunc("/{tripId}", controller.UpdateTrip).Methods("PUT")
	tripRouter.HandleFunc("/{tripId}", controller.DeleteTrip).Methods("DELETE")
	tripRouter.HandleFunc("/{tripId}/join", controller.JoinGroup).Methods("POST")
}
