package controllers

import (
	"encoding/json"
	"net/http"

	"unigo_server/services"

	"github.com/gorilla/mux"
)

// TripController handles HTTP requests for trip CRUD and the group lifecycle
type TripController struct {
	TripService *services.TripService
}

// NewTripController creates a new TripController instance
func NewTripController(tripService *services.TripService) *TripController {
	return &TripController{TripService: tripService}
}

type createTripRequest struct {
	UserID          string `json:"userId"`
	UserDisplayName string `json:"userDisplayName"`
	UserEmail       string `json:"userEmail"`
	services.TripInput
}

// CreateTrip registers a new trip and runs the matching pipeline over it.
func (tc *TripController) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	trip, err := tc.TripService.CreateTrip(r.Context(), req.UserID, req.UserDisplayName, req.UserEmail, req.TripInput)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Trip registered successfully",
		"trip":    trip,
	})
}

// GetActiveTrips lists all active trips, newest first.
func (tc *TripController) GetActiveTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := tc.TripService.GetActiveTrips(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"trips": trips})
}

// GetUserTrips lists the requesting user's trips.
func (tc *TripController) GetUserTrips(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	trips, err := tc.TripService.GetUserTrips(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"trips": trips})
}

// SearchTrips filters active trips by destination/startPoint/date.
func (tc *TripController) SearchTrips(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	trips, err := tc.TripService.SearchTrips(r.Context(), services.TripFilters{
		Destination: query.Get("destination"),
		StartPoint:  query.Get("startPoint"),
		Date:        query.Get("date"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"trips": trips})
}

// GetTrip fetches one trip by id.
func (tc *TripController) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	trip, err := tc.TripService.GetTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"trip": trip})
}

// UpdateTrip rewrites a trip's editable fields.
func (tc *TripController) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	var input services.TripInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	trip, err := tc.TripService.UpdateTrip(r.Context(), tripID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"trip": trip})
}

// DeleteTrip cancels a trip.
func (tc *TripController) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	if err := tc.TripService.DeleteTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Trip deleted"})
}

// JoinGroup adds the requesting user to a group trip.
func (tc *TripController) JoinGroup(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	trip, err := tc.TripService.JoinGroup(r.Context(), tripID, req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Joined group",
		"trip":    trip,
	})
}

// CleanupExpiredTrips sweeps active trips past their expiry.
func (tc *TripController) CleanupExpiredTrips(w http.ResponseWriter, r *http.Request) {
	count, err := tc.TripService.CleanupExpiredTrips(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"expired": count})
}
