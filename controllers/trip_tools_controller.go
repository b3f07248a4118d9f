package controllers

import (
	"encoding/json"
	"net/http"

	"unigo_server/services"

	"github.com/gorilla/mux"
)

// TripToolsController handles expenses, packing lists and itineraries for a trip
type TripToolsController struct {
	TripToolsService *services.TripToolsService
}

// NewTripToolsController creates a new TripToolsController instance
func NewTripToolsController(tripToolsService *services.TripToolsService) *TripToolsController {
	return &TripToolsController{TripToolsService: tripToolsService}
}

type toolActorRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// --- Expenses ---

// AddExpense records a shared expense on a trip.
func (ttc *TripToolsController) AddExpense(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	var req struct {
		toolActorRequest
		services.ExpenseInput
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	expense, err := ttc.TripToolsService.AddExpense(r.Context(), tripID, req.ExpenseInput, req.UserID, req.UserName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"expense": expense})
}

// UpdateExpense rewrites an expense's editable fields.
func (ttc *TripToolsController) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var input services.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	expense, err := ttc.TripToolsService.UpdateExpense(r.Context(), vars["tripId"], vars["expenseId"], input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"expense": expense})
}

// DeleteExpense removes an expense from a trip.
func (ttc *TripToolsController) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := ttc.TripToolsService.DeleteExpense(r.Context(), vars["tripId"], vars["expenseId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Expense deleted"})
}

// ListExpenses lists a trip's expenses, optionally with the balance between
// the requesting user and their companion.
func (ttc *TripToolsController) ListExpenses(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	expenses, err := ttc.TripToolsService.ListExpenses(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	response := map[string]interface{}{"expenses": expenses}

	query := r.URL.Query()
	userID, companionID := query.Get("userId"), query.Get("companionId")
	if userID != "" && companionID != "" {
		response["balance"] = services.CalculateBalance(expenses, userID, companionID)
	}

	writeJSON(w, http.StatusOK, response)
}

// --- Packing list ---

// AddPackingItem adds a shared packing-list item.
func (ttc *TripToolsController) AddPackingItem(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	var req struct {
		toolActorRequest
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	item, err := ttc.TripToolsService.AddPackingItem(r.Context(), tripID, req.Name, req.Category, req.UserID, req.UserName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"item": item})
}

// ClaimPackingItem marks an item as brought by the requesting user.
func (ttc *TripToolsController) ClaimPackingItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req toolActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	if err := ttc.TripToolsService.ClaimPackingItem(r.Context(), vars["tripId"], vars["itemId"], req.UserID, req.UserName); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Item claimed"})
}

// UnclaimPackingItem releases a previously claimed item.
func (ttc *TripToolsController) UnclaimPackingItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := ttc.TripToolsService.UnclaimPackingItem(r.Context(), vars["tripId"], vars["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Item released"})
}

// DeletePackingItem removes an item from the packing list.
func (ttc *TripToolsController) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := ttc.TripToolsService.DeletePackingItem(r.Context(), vars["tripId"], vars["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Item deleted"})
}

// ListPackingItems lists a trip's packing list.
func (ttc *TripToolsController) ListPackingItems(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	items, err := ttc.TripToolsService.ListPackingItems(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// --- Itinerary ---

// AddActivity suggests a new itinerary entry.
func (ttc *TripToolsController) AddActivity(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	var req struct {
		toolActorRequest
		services.ActivityInput
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	activity, err := ttc.TripToolsService.AddActivity(r.Context(), tripID, req.ActivityInput, req.UserID, req.UserName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"activity": activity})
}

// ApproveActivity records the requesting user's approval of a suggestion.
func (ttc *TripToolsController) ApproveActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req toolActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	if err := ttc.TripToolsService.ApproveActivity(r.Context(), vars["tripId"], vars["activityId"], req.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Activity approved"})
}

// UpdateActivity rewrites an itinerary entry's editable fields.
func (ttc *TripToolsController) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var input services.ActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := ttc.TripToolsService.UpdateActivity(r.Context(), vars["tripId"], vars["activityId"], input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Activity updated"})
}

// DeleteActivity removes an itinerary entry.
func (ttc *TripToolsController) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := ttc.TripToolsService.DeleteActivity(r.Context(), vars["tripId"], vars["activityId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Activity deleted"})
}

// ListItinerary lists a trip's itinerary sorted by day then time.
func (ttc *TripToolsController) ListItinerary(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	activities, err := ttc.TripToolsService.ListItinerary(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"itinerary": activities})
}
