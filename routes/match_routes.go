package routes

import (
	"unigo_server/controllers"
	"unigo_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchingService *services.MatchingService) {
	controller := controllers.NewMatchController(matchingService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("", controller.GetMatchesForUser).Methods("GET")
	matchRouter.HandleFunc("/{matchId}", controller.GetMatch).Methods("GET")
	matchRouter.HandleFunc("/{matchId}/confirm", controller.ConfirmMatch).Methods("POST")
	matchRouter.HandleFunc("/{matchId}/reject", controller.RejectMatch).Methods("POST")
}
