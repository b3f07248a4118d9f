package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"unigo_server/services"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps service errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrMatchClosed),
		errors.Is(err, services.ErrDuplicateReview),
		errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrGroupFull):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrNotNotificationOwner):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, services.ErrMissingTripFields),
		errors.Is(err, services.ErrInvalidTripInput),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrNotGroupTrip):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
