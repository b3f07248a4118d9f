package routes

import (
	"unigo_server/controllers"
	"unigo_server/services"

	"github.com/gorilla/mux"
)

// RegisterTripToolsRoutes sets up routes for shared trip tools under /api/trips/{tripId}
func RegisterTripToolsRoutes(r *mux.Router, tripToolsService *services.TripToolsService) {
	controller := controllers.NewTripToolsController(tripToolsService)

	toolsRouter := r.PathPrefix("/api/trips/{tripId}").Subrouter()

	toolsRouter.HandleFunc("/expenses", controller.AddExpense).Methods("POST")
	toolsRouter.HandleFunc("/expenses", controller.ListExpenses).Methods("GET")
	toolsRouter.HandleFunc("/expenses/{expenseId}", controller.UpdateExpense).Methods("PUT")
	toolsRouter.HandleFunc("/expenses/{expenseId}", controller.DeleteExpense).Methods("DELETE")

	toolsRouter.HandleFunc("/packing", controller.AddPackingItem).Methods("POST")
	toolsRouter.HandleFunc("/packing", controller.ListPackingItems).Methods("GET")
	toolsRouter.HandleFunc("/packing/{itemId}/claim", controller.ClaimPackingItem).Methods("POST")
	toolsRouter.HandleFunc("/packing/{itemId}/claim", controller.UnclaimPackingItem).Methods("DELETE")
	toolsRouter.HandleFunc("/packing/{itemId}", controller.DeletePackingItem).Methods("DELETE")

	toolsRouter.HandleFunc("/itinerary", controller.AddActivity).Methods("POST")
	toolsRouter.HandleFunc("/itinerary", controller.ListItinerary).Methods("GET")
	toolsRouter.HandleFunc("/itinerary/{activityId}/approve", controller.ApproveActivity).Methods("POST")
	toolsRouter.HandleFunc("/itinerary/{activityId}", controller.UpdateActivity).Methods("PUT")
	toolsRouter.HandleFunc("/itinerary/{activityId}", controller.DeleteActivity).Methods("DELETE")
}
