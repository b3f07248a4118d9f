package services

import (
	"testing"

	"unigo_server/models"
)

func trip(id, userID, clock string) models.Trip {
	return models.Trip{
		TripID:      id,
		UserID:      userID,
		Destination: "Goa",
		StartPoint:  "Bangalore",
		Date:        "2026-09-12",
		Time:        clock,
		Status:      models.TripStatusActive,
	}
}

func TestFilterCompatibleTripsWithinWindow(t *testing.T) {
	newTrip := trip("t1", "alice", "09:00")
	candidates := []models.Trip{trip("t2", "bob", "09:45")}

	matches := FilterCompatibleTrips(newTrip, candidates)
	if len(matches) != 1 || matches[0].TripID != "t2" {
		t.Fatalf("expected t2 to match, got %v", matches)
	}
}

func TestFilterCompatibleTripsOutsideWindow(t *testing.T) {
	newTrip := trip("t1", "alice", "09:00")
	candidates := []models.Trip{trip("t2", "bob", "10:30")}

	if matches := FilterCompatibleTrips(newTrip, candidates); len(matches) != 0 {
		t.Fatalf("expected no matches 90 minutes apart, got %v", matches)
	}
}

func TestFilterCompatibleTripsBoundaryInclusive(t *testing.T) {
	newTrip := trip("t1", "alice", "09:00")
	candidates := []models.Trip{trip("t2", "bob", "10:00")}

	if matches := FilterCompatibleTrips(newTrip, candidates); len(matches) != 1 {
		t.Fatalf("expected exactly-60-minutes apart to match, got %v", matches)
	}
}

func TestFilterCompatibleTripsSymmetric(t *testing.T) {
	a := trip("t1", "alice", "09:00")
	b := trip("t2", "bob", "09:45")

	forward := FilterCompatibleTrips(a, []models.Trip{b})
	backward := FilterCompatibleTrips(b, []models.Trip{a})
	if len(forward) != 1 || len(backward) != 1 {
		t.Fatalf("expected symmetric match, got %v and %v", forward, backward)
	}
}

func TestFilterCompatibleTripsExcludesSelfAndSameOwner(t *testing.T) {
	newTrip := trip("t1", "alice", "09:00")
	candidates := []models.Trip{
		trip("t1", "alice", "09:00"), // the trip itself, echoed by the index
		trip("t2", "alice", "09:10"), // second trip by the same user
	}

	if matches := FilterCompatibleTrips(newTrip, candidates); len(matches) != 0 {
		t.Fatalf("expected self and same-owner trips to be excluded, got %v", matches)
	}
}

func TestFilterCompatibleTripsNoMidnightWraparound(t *testing.T) {
	newTrip := trip("t1", "alice", "23:30")
	candidates := []models.Trip{trip("t2", "bob", "00:10")}

	// 23:30 and 00:10 are 1400 minutes apart on the same calendar date.
	if matches := FilterCompatibleTrips(newTrip, candidates); len(matches) != 0 {
		t.Fatalf("expected no wraparound across midnight, got %v", matches)
	}
}

func TestFilterCompatibleTripsSkipsBadClocks(t *testing.T) {
	newTrip := trip("t1", "alice", "09:00")
	candidates := []models.Trip{
		trip("t2", "bob", "25:00"),
		trip("t3", "carol", "09:30"),
	}

	matches := FilterCompatibleTrips(newTrip, candidates)
	if len(matches) != 1 || matches[0].TripID != "t3" {
		t.Fatalf("expected only t3, got %v", matches)
	}
}

func TestPairKeyDeterministic(t *testing.T) {
	if PairKey("t1", "t2") != PairKey("t2", "t1") {
		t.Fatal("pair key should be order independent")
	}
	if got := PairKey("t1", "t2"); got != "pair#t1#t2" {
		t.Fatalf("unexpected pair key %q", got)
	}
}

func TestApplyConfirmFromPending(t *testing.T) {
	match := &models.Match{Status: models.MatchStatusPending}

	changed, err := applyConfirm(match, "alice", "2026-09-12T10:00:00Z")
	if err != nil || !changed {
		t.Fatalf("expected confirm to apply, changed=%v err=%v", changed, err)
	}
	if match.Status != models.MatchStatusConfirmed || match.ConfirmedBy != "alice" {
		t.Fatalf("unexpected match state %+v", match)
	}
}

func TestApplyConfirmIdempotent(t *testing.T) {
	match := &models.Match{Status: models.MatchStatusConfirmed, ConfirmedBy: "alice"}

	changed, err := applyConfirm(match, "bob", "2026-09-12T11:00:00Z")
	if err != nil || changed {
		t.Fatalf("expected no-op on repeat confirm, changed=%v err=%v", changed, err)
	}
	if match.ConfirmedBy != "alice" {
		t.Fatalf("repeat confirm must not overwrite the original actor, got %q", match.ConfirmedBy)
	}
}

func TestApplyConfirmAfterRejectFails(t *testing.T) {
	match := &models.Match{Status: models.MatchStatusRejected}

	if _, err := applyConfirm(match, "alice", "2026-09-12T10:00:00Z"); err != ErrMatchClosed {
		t.Fatalf("expected ErrMatchClosed, got %v", err)
	}
	if match.Status != models.MatchStatusRejected {
		t.Fatalf("failed confirm must not mutate the match, got %q", match.Status)
	}
}

func TestApplyRejectFromPending(t *testing.T) {
	match := &models.Match{Status: models.MatchStatusPending}

	changed, err := applyReject(match, "bob", "2026-09-12T10:00:00Z")
	if err != nil || !changed {
		t.Fatalf("expected reject to apply, changed=%v err=%v", changed, err)
	}
	if match.Status != models.MatchStatusRejected || match.RejectedBy != "bob" {
		t.Fatalf("unexpected match state %+v", match)
	}
}

func TestApplyRejectIdempotent(t *testing.T) {
	match := &models.Match{Status: models.MatchStatusRejected, RejectedBy: "bob"}

	changed, err := applyReject(match, "alice", "2026-09-12T11:00:00Z")
	if err != nil || changed {
		t.Fatalf("expected no-op on repeat reject, changed=%v err=%v", changed, err)
	}
}

func TestApplyRejectAfterConfirmFails(t *testing.T) {
	match := &models.Match{Status: models.MatchStatusConfirmed}

	if _, err := applyReject(match, "bob", "2026-09-12T10:00:00Z"); err != ErrMatchClosed {
		t.Fatalf("expected ErrMatchClosed, got %v", err)
	}
}
