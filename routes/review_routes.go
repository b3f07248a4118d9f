package routes

import (
	"unigo_server/controllers"
	"unigo_server/services"

	"github.com/gorilla/mux"
)

// RegisterReviewRoutes sets up routes for companion reviews under /api/reviews
func RegisterReviewRoutes(r *mux.Router, reviewService *services.ReviewService, matchingService *services.MatchingService) {
	controller := controllers.NewReviewController(reviewService, matchingService)

	reviewRouter := r.PathPrefix("/api/reviews").Subrouter()

	reviewRouter.HandleFunc("", controller.CreateReview).Methods("POST")
	reviewRouter.HandleFunc("/pending", controller.GetPendingReviews).Methods("GET")
	reviewRouter.HandleFunc("/user/{userId}", controller.GetReviewsForUser).Methods("GET")
	reviewRouter.HandleFunc("/user/{userId}/rating", controller.GetUserRating).Methods("GET")
}
