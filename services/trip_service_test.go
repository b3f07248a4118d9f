package services

import (
	"errors"
	"testing"

	"unigo_server/models"
)

func TestBuildRouteKey(t *testing.T) {
	got := BuildRouteKey("Goa", "Bangalore", "2026-09-12")
	if got != "Goa|Bangalore|2026-09-12" {
		t.Fatalf("unexpected route key %q", got)
	}
}

func TestValidateTripInput(t *testing.T) {
	valid := TripInput{Destination: "Goa", StartPoint: "Bangalore", Date: "2026-09-12", Time: "09:00"}
	if err := ValidateTripInput(valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name  string
		input TripInput
		want  error
	}{
		{"missing destination", TripInput{StartPoint: "Bangalore", Date: "2026-09-12", Time: "09:00"}, ErrMissingTripFields},
		{"missing start point", TripInput{Destination: "Goa", Date: "2026-09-12", Time: "09:00"}, ErrMissingTripFields},
		{"missing date", TripInput{Destination: "Goa", StartPoint: "Bangalore", Time: "09:00"}, ErrMissingTripFields},
		{"missing time", TripInput{Destination: "Goa", StartPoint: "Bangalore", Date: "2026-09-12"}, ErrMissingTripFields},
		{"bad date", TripInput{Destination: "Goa", StartPoint: "Bangalore", Date: "12-09-2026", Time: "09:00"}, ErrInvalidTripInput},
		{"bad time", TripInput{Destination: "Goa", StartPoint: "Bangalore", Date: "2026-09-12", Time: "9am"}, ErrInvalidTripInput},
		{"out of range time", TripInput{Destination: "Goa", StartPoint: "Bangalore", Date: "2026-09-12", Time: "25:00"}, ErrInvalidTripInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateTripInput(tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateJoin(t *testing.T) {
	group := models.Trip{
		TripID:         "t1",
		UserID:         "alice",
		IsGroupTrip:    true,
		TotalSeats:     3,
		AvailableSeats: 2,
		Members:        []string{"alice"},
	}

	if err := ValidateJoin(group, "bob"); err != nil {
		t.Fatalf("expected bob to be allowed in, got %v", err)
	}

	solo := group
	solo.IsGroupTrip = false
	if err := ValidateJoin(solo, "bob"); !errors.Is(err, ErrNotGroupTrip) {
		t.Fatalf("expected ErrNotGroupTrip, got %v", err)
	}

	if err := ValidateJoin(group, "alice"); !errors.Is(err, ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember for the owner, got %v", err)
	}

	full := group
	full.AvailableSeats = 0
	if err := ValidateJoin(full, "bob"); !errors.Is(err, ErrGroupFull) {
		t.Fatalf("expected ErrGroupFull, got %v", err)
	}
}

func TestTripExpiryIsDayAfterTravel(t *testing.T) {
	if got := tripExpiry("2026-09-12"); got != "2026-09-13T00:00:00Z" {
		t.Fatalf("unexpected expiry %q", got)
	}
}
