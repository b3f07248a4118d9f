package controllers

import (
	"encoding/json"
	"net/http"

	"unigo_server/models"
	"unigo_server/services"

	"github.com/gorilla/mux"
)

// ReviewController handles HTTP requests for companion reviews.
// It also holds the MatchingService so pending reviews can be derived
// from the user's confirmed matches.
type ReviewController struct {
	ReviewService   *services.ReviewService
	MatchingService *services.MatchingService
}

// NewReviewController creates a new ReviewController instance
func NewReviewController(reviewService *services.ReviewService, matchingService *services.MatchingService) *ReviewController {
	return &ReviewController{ReviewService: reviewService, MatchingService: matchingService}
}

// CreateReview records a companion review.
func (rc *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := rc.ReviewService.CreateReview(r.Context(), review)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Review submitted",
		"review":  created,
	})
}

// GetReviewsForUser lists recent reviews received by a user.
func (rc *ReviewController) GetReviewsForUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	reviews, err := rc.ReviewService.GetReviewsForUser(r.Context(), userID, 0)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}

// GetUserRating returns the aggregate rating for a user.
func (rc *ReviewController) GetUserRating(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	rating, err := rc.ReviewService.GetUserRating(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"rating": rating})
}

// GetPendingReviews lists confirmed companions the user hasn't reviewed yet.
func (rc *ReviewController) GetPendingReviews(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	matches, err := rc.MatchingService.GetMatchesForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	pending, err := rc.ReviewService.GetPendingReviews(r.Context(), userID, matches)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pendingReviews": pending})
}
