package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"unigo_server/services"
)

func TestCreateTripRejectsBadBody(t *testing.T) {
	controller := NewTripController(&services.TripService{})

	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	controller.CreateTrip(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rr.Code)
	}
}

func TestCreateTripRequiresUserID(t *testing.T) {
	controller := NewTripController(&services.TripService{})

	body := `{"destination":"Goa","startPoint":"Bangalore","date":"2026-09-12","time":"09:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	rr := httptest.NewRecorder()

	controller.CreateTrip(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without userId, got %d", rr.Code)
	}
}

func TestGetUserTripsRequiresUserID(t *testing.T) {
	controller := NewTripController(&services.TripService{})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/user", nil)
	rr := httptest.NewRecorder()

	controller.GetUserTrips(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without userId, got %d", rr.Code)
	}
}
