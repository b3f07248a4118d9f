package services

import (
	"strings"
	"testing"

	"unigo_server/models"
)

func sampleMatch() models.Match {
	return models.Match{
		MatchID:     "pair#t1#t2",
		Trip1ID:     "t1",
		Trip2ID:     "t2",
		User1ID:     "alice",
		User2ID:     "bob",
		User1Name:   "Alice",
		User2Name:   "Bob",
		Destination: "Goa",
		StartPoint:  "Bangalore",
		Date:        "2026-09-12",
		Status:      models.MatchStatusPending,
	}
}

func TestBuildMatchFoundNotifications(t *testing.T) {
	notifications := buildMatchFoundNotifications(sampleMatch())
	if len(notifications) != 2 {
		t.Fatalf("expected one notification per user, got %d", len(notifications))
	}

	first, second := notifications[0], notifications[1]
	if first.UserID != "alice" || second.UserID != "bob" {
		t.Fatalf("unexpected recipients %q and %q", first.UserID, second.UserID)
	}

	// Each side's notification names the other party.
	if first.ActorID != "bob" || first.ActorName != "Bob" {
		t.Fatalf("alice's notification should name bob, got %+v", first)
	}
	if second.ActorID != "alice" || second.ActorName != "Alice" {
		t.Fatalf("bob's notification should name alice, got %+v", second)
	}

	if first.TripID != "t1" || second.TripID != "t2" {
		t.Fatalf("notifications should point at each user's own trip, got %q and %q", first.TripID, second.TripID)
	}

	for _, n := range notifications {
		if n.Type != models.NotificationMatchFound {
			t.Fatalf("unexpected type %q", n.Type)
		}
		if n.MatchID != "pair#t1#t2" {
			t.Fatalf("unexpected match id %q", n.MatchID)
		}
		if !strings.Contains(n.Message, "Goa") || !strings.Contains(n.Message, "2026-09-12") {
			t.Fatalf("message should mention route and date, got %q", n.Message)
		}
	}
}

func TestBuildCompanionSelectedNotifications(t *testing.T) {
	match := sampleMatch()
	match.Status = models.MatchStatusConfirmed
	match.ConfirmedBy = "alice"

	notifications := buildCompanionSelectedNotifications(match)
	if len(notifications) != 2 {
		t.Fatalf("expected one notification per user, got %d", len(notifications))
	}

	if !strings.Contains(notifications[0].Message, "Bob") {
		t.Fatalf("alice's message should name Bob, got %q", notifications[0].Message)
	}
	if !strings.Contains(notifications[1].Message, "Alice") {
		t.Fatalf("bob's message should name Alice, got %q", notifications[1].Message)
	}
	for _, n := range notifications {
		if n.Type != models.NotificationCompanionSelected {
			t.Fatalf("unexpected type %q", n.Type)
		}
	}
}
