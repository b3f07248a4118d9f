package controllers

import (
	"encoding/json"
	"net/http"

	"unigo_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for match-related actions
type MatchController struct {
	MatchingService *services.MatchingService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchingService *services.MatchingService) *MatchController {
	return &MatchController{MatchingService: matchingService}
}

// GetMatchesForUser handles fetching matches where the user is either side.
func (mc *MatchController) GetMatchesForUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	matches, err := mc.MatchingService.GetMatchesForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

// GetMatch fetches one match by id.
func (mc *MatchController) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	match, err := mc.MatchingService.GetMatch(r.Context(), matchID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"match": match})
}

type matchActionRequest struct {
	UserID string `json:"userId"`
}

// ConfirmMatch confirms a companion. Idempotent for repeated confirms.
func (mc *MatchController) ConfirmMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	var req matchActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	match, err := mc.MatchingService.ConfirmMatch(r.Context(), matchID, req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Companion confirmed",
		"match":   match,
	})
}

// RejectMatch declines a match. Idempotent for repeated rejects.
func (mc *MatchController) RejectMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	var req matchActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	match, err := mc.MatchingService.RejectMatch(r.Context(), matchID, req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Match rejected",
		"match":   match,
	})
}
