package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"unigo_server/models"
	"unigo_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Departure times this many minutes apart (inclusive) are still compatible.
const matchWindowMinutes = 60

var (
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchClosed is returned when confirming a rejected match or
	// rejecting a confirmed one. Both states are terminal.
	ErrMatchClosed = errors.New("match is already closed")
)

// MatchingService finds compatible trips, records matches and drives the
// match lifecycle.
type MatchingService struct {
	Dynamo   *DynamoService
	Notifier *NotificationService
}

// FindMatches returns the active trips compatible with newTrip: identical
// destination, start point and date (served by the route index), a different
// owner, and a departure time within the one-hour window.
func (ms *MatchingService) FindMatches(ctx context.Context, newTrip models.Trip) ([]models.Trip, error) {
	routeKey := BuildRouteKey(newTrip.Destination, newTrip.StartPoint, newTrip.Date)

	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.TripsTable, "routeKey-index",
		"routeKey = :routeKey",
		map[string]types.AttributeValue{
			":routeKey": &types.AttributeValueMemberS{Value: routeKey},
			":status":   &types.AttributeValueMemberS{Value: models.TripStatusActive},
		},
		map[string]string{"#s": "status"},
		"#s = :status", false, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find matches: %w", err)
	}

	candidates := make([]models.Trip, 0, len(items))
	for _, item := range items {
		var trip models.Trip
		if err := attributevalue.UnmarshalMap(item, &trip); err != nil {
			log.Printf("Error unmarshalling candidate trip: %v", err)
			continue
		}
		candidates = append(candidates, trip)
	}

	return FilterCompatibleTrips(newTrip, candidates), nil
}

// FilterCompatibleTrips applies the in-process part of the match check:
// the trip itself and same-owner trips are dropped, and departure times are
// compared as minutes since midnight with no midnight wraparound.
func FilterCompatibleTrips(newTrip models.Trip, candidates []models.Trip) []models.Trip {
	newMinutes, err := utils.ParseClock(newTrip.Time)
	if err != nil {
		log.Printf("Invalid departure time on trip %s: %v", newTrip.TripID, err)
		return nil
	}

	matches := make([]models.Trip, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.TripID == newTrip.TripID || candidate.UserID == newTrip.UserID {
			continue
		}
		candidateMinutes, err := utils.ParseClock(candidate.Time)
		if err != nil {
			log.Printf("Invalid departure time on trip %s: %v", candidate.TripID, err)
			continue
		}
		if utils.MinutesApart(newMinutes, candidateMinutes) <= matchWindowMinutes {
			matches = append(matches, candidate)
		}
	}
	return matches
}

// PairKey builds the deterministic match id for a trip pair. Matching the
// same pair again, from either side, addresses the same record.
func PairKey(trip1ID, trip2ID string) string {
	if trip2ID < trip1ID {
		trip1ID, trip2ID = trip2ID, trip1ID
	}
	return "pair#" + trip1ID + "#" + trip2ID
}

// CreateMatch records a pending match between two trips. Identity fields are
// denormalized from the trips at creation time. The deterministic pair key
// makes repeat creation an upsert rather than a duplicate.
func (ms *MatchingService) CreateMatch(ctx context.Context, trip1, trip2 models.Trip) (*models.Match, error) {
	match := models.Match{
		MatchID:     PairKey(trip1.TripID, trip2.TripID),
		Trip1ID:     trip1.TripID,
		Trip2ID:     trip2.TripID,
		User1ID:     trip1.UserID,
		User2ID:     trip2.UserID,
		User1Name:   trip1.UserDisplayName,
		User2Name:   trip2.UserDisplayName,
		Destination: trip1.Destination,
		StartPoint:  trip1.StartPoint,
		Date:        trip1.Date,
		Status:      models.MatchStatusPending,
		MatchedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := ms.Dynamo.PutItem(ctx, models.MatchesTable, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return &match, nil
}

// ProcessNewTripMatches runs the full pipeline for a freshly registered
// trip: find compatible trips, record one match per pair sequentially, then
// fire notifications for each. A create failure surfaces after the earlier
// matches are already persisted; notification failures are absorbed by the
// notifier.
func (ms *MatchingService) ProcessNewTripMatches(ctx context.Context, newTrip models.Trip) (int, error) {
	compatible, err := ms.FindMatches(ctx, newTrip)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, other := range compatible {
		match, err := ms.CreateMatch(ctx, newTrip, other)
		if err != nil {
			return created, err
		}
		created++
		log.Printf("🤝 Match %s: %s and %s heading to %s on %s", match.MatchID,
			match.User1ID, match.User2ID, match.Destination, match.Date)

		if ms.Notifier != nil {
			ms.Notifier.NotifyMatchFound(ctx, *match, newTrip, other)
		}
	}
	return created, nil
}

// GetMatch retrieves a match by id. Returns ErrMatchNotFound when absent.
func (ms *MatchingService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	})
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// GetMatchesForUser fetches matches where the user is either user1 or user2.
func (ms *MatchingService) GetMatchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match

	for _, indexName := range []string{"user1Id-index", "user2Id-index"} {
		condition := "user1Id = :userId"
		if indexName == "user2Id-index" {
			condition = "user2Id = :userId"
		}

		items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, indexName,
			condition,
			map[string]types.AttributeValue{
				":userId": &types.AttributeValueMemberS{Value: userID},
			},
			nil, "", false, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch matches: %w", err)
		}

		for _, item := range items {
			var match models.Match
			if err := attributevalue.UnmarshalMap(item, &match); err != nil {
				log.Printf("❌ Error unmarshalling match from %s: %v", indexName, err)
				continue
			}
			matches = append(matches, match)
		}
	}

	log.Printf("✅ Found %d matches for user %s", len(matches), userID)
	return matches, nil
}

// applyConfirm transitions a match to confirmed in memory. Returns false
// with no error when the match is already confirmed (idempotent repeat).
func applyConfirm(match *models.Match, actorUserID, now string) (bool, error) {
	switch match.Status {
	case models.MatchStatusConfirmed:
		return false, nil
	case models.MatchStatusRejected:
		return false, ErrMatchClosed
	}
	match.Status = models.MatchStatusConfirmed
	match.ConfirmedBy = actorUserID
	match.ConfirmedAt = now
	return true, nil
}

// applyReject transitions a match to rejected in memory. Returns false with
// no error when the match is already rejected (idempotent repeat).
func applyReject(match *models.Match, actorUserID, now string) (bool, error) {
	switch match.Status {
	case models.MatchStatusRejected:
		return false, nil
	case models.MatchStatusConfirmed:
		return false, ErrMatchClosed
	}
	match.Status = models.MatchStatusRejected
	match.RejectedBy = actorUserID
	match.RejectedAt = now
	return true, nil
}

// ConfirmMatch transitions a pending match to confirmed and notifies both
// parties. Re-confirming a confirmed match is a no-op success; confirming a
// rejected match fails with ErrMatchClosed.
func (ms *MatchingService) ConfirmMatch(ctx context.Context, matchID, actorUserID string) (*models.Match, error) {
	match, err := ms.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	changed, err := applyConfirm(match, actorUserID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	if !changed {
		return match, nil
	}

	_, err = ms.Dynamo.UpdateItem(ctx, models.MatchesTable,
		map[string]types.AttributeValue{"matchId": &types.AttributeValueMemberS{Value: matchID}},
		"SET #s = :status, confirmedBy = :confirmedBy, confirmedAt = :confirmedAt",
		map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: match.Status},
			":confirmedBy": &types.AttributeValueMemberS{Value: match.ConfirmedBy},
			":confirmedAt": &types.AttributeValueMemberS{Value: match.ConfirmedAt},
		},
		map[string]string{"#s": "status"})
	if err != nil {
		return nil, fmt.Errorf("failed to confirm match: %w", err)
	}

	if ms.Notifier != nil {
		ms.Notifier.NotifyCompanionSelected(ctx, *match)
	}
	return match, nil
}

// RejectMatch transitions a pending match to rejected. Re-rejecting is a
// no-op success; rejecting a confirmed match fails with ErrMatchClosed.
func (ms *MatchingService) RejectMatch(ctx context.Context, matchID, actorUserID string) (*models.Match, error) {
	match, err := ms.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	changed, err := applyReject(match, actorUserID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	if !changed {
		return match, nil
	}

	_, err = ms.Dynamo.UpdateItem(ctx, models.MatchesTable,
		map[string]types.AttributeValue{"matchId": &types.AttributeValueMemberS{Value: matchID}},
		"SET #s = :status, rejectedBy = :rejectedBy, rejectedAt = :rejectedAt",
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: match.Status},
			":rejectedBy": &types.AttributeValueMemberS{Value: match.RejectedBy},
			":rejectedAt": &types.AttributeValueMemberS{Value: match.RejectedAt},
		},
		map[string]string{"#s": "status"})
	if err != nil {
		return nil, fmt.Errorf("failed to reject match: %w", err)
	}
	return match, nil
}
