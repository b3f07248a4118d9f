package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"unigo_server/models"
	"unigo_server/socket"
	"unigo_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// Trip validation and join-group errors, rejected before any persistence.
var (
	ErrMissingTripFields = errors.New("missing required trip fields")
	ErrInvalidTripInput  = errors.New("invalid trip fields")
	ErrNotGroupTrip      = errors.New("this is not a group trip")
	ErrAlreadyMember     = errors.New("you have already joined this group")
	ErrGroupFull         = errors.New("group is full")
)

const defaultGroupSeats = 4

// TripService handles trip CRUD and the group/expiry lifecycle. Matching is
// attached after construction so a freshly created trip can be run through
// the pipeline without a service cycle.
type TripService struct {
	Dynamo    *DynamoService
	Matching  *MatchingService
	Broadcast *socket.Broadcaster
}

// TripInput carries the caller-editable trip fields.
type TripInput struct {
	Destination      string `json:"destination"`
	StartPoint       string `json:"startPoint"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Contact          string `json:"contact"`
	GenderPreference string `json:"genderPreference"`
	IsGroupTrip      bool   `json:"isGroupTrip"`
	TotalSeats       int    `json:"totalSeats"`
}

// BuildRouteKey computes the composite equality key the route index is
// partitioned on: destination, start point and date of travel.
func BuildRouteKey(destination, startPoint, date string) string {
	return destination + "|" + startPoint + "|" + date
}

// ValidateTripInput checks required fields and the date/time formats.
func ValidateTripInput(input TripInput) error {
	if input.Destination == "" || input.StartPoint == "" || input.Date == "" || input.Time == "" {
		return ErrMissingTripFields
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidTripInput, input.Date)
	}
	if _, err := utils.ParseClock(input.Time); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTripInput, err)
	}
	return nil
}

// tripExpiry is the trip date plus one day.
func tripExpiry(date string) string {
	day, _ := time.Parse("2006-01-02", date)
	return day.AddDate(0, 0, 1).UTC().Format(time.RFC3339)
}

// CreateTrip validates, persists and returns a new trip, then runs the
// matching pipeline over it. A matching failure never fails the creation.
func (ts *TripService) CreateTrip(ctx context.Context, userID, userDisplayName, userEmail string, input TripInput) (*models.Trip, error) {
	if userID == "" {
		return nil, errors.New("missing userId for trip")
	}
	if err := ValidateTripInput(input); err != nil {
		return nil, err
	}

	if userDisplayName == "" {
		userDisplayName = "Anonymous"
	}
	if input.GenderPreference == "" {
		input.GenderPreference = "any"
	}

	totalSeats := 1
	availableSeats := 0
	if input.IsGroupTrip {
		totalSeats = input.TotalSeats
		if totalSeats <= 0 {
			totalSeats = defaultGroupSeats
		}
		availableSeats = totalSeats - 1
	}

	trip := models.Trip{
		TripID:           uuid.NewString(),
		UserID:           userID,
		UserDisplayName:  userDisplayName,
		UserEmail:        userEmail,
		Destination:      input.Destination,
		StartPoint:       input.StartPoint,
		Date:             input.Date,
		Time:             input.Time,
		Contact:          input.Contact,
		GenderPreference: input.GenderPreference,
		IsGroupTrip:      input.IsGroupTrip,
		TotalSeats:       totalSeats,
		AvailableSeats:   availableSeats,
		Members:          []string{userID},
		Status:           models.TripStatusActive,
		RouteKey:         BuildRouteKey(input.Destination, input.StartPoint, input.Date),
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
		ExpiresAt:        tripExpiry(input.Date),
	}

	if err := ts.Dynamo.PutItem(ctx, models.TripsTable, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	if ts.Matching != nil {
		if count, err := ts.Matching.ProcessNewTripMatches(ctx, trip); err != nil {
			log.Printf("❌ Matching pipeline failed for trip %s: %v", trip.TripID, err)
		} else if count > 0 {
			log.Printf("✅ Trip %s matched with %d existing trip(s)", trip.TripID, count)
		}
	}

	ts.Broadcast.ToFeed("trip", map[string]interface{}{"type": socket.DeltaAdded, "trip": trip})
	return &trip, nil
}

// GetTrip retrieves a trip by id.
func (ts *TripService) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	item, err := ts.Dynamo.GetItem(ctx, models.TripsTable, map[string]types.AttributeValue{
		"tripId": &types.AttributeValueMemberS{Value: tripID},
	})
	if err != nil {
		return nil, err
	}

	var trip models.Trip
	if err := attributevalue.UnmarshalMap(item, &trip); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trip: %w", err)
	}
	return &trip, nil
}

// GetActiveTrips returns all active trips, newest first.
func (ts *TripService) GetActiveTrips(ctx context.Context) ([]models.Trip, error) {
	items, err := ts.Dynamo.QueryItemsWithIndex(ctx, models.TripsTable, "status-index",
		"#s = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: models.TripStatusActive},
		},
		map[string]string{"#s": "status"},
		"", true, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active trips: %w", err)
	}
	return unmarshalTrips(items), nil
}

// GetUserTrips returns a user's trips, newest first.
func (ts *TripService) GetUserTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	items, err := ts.Dynamo.QueryItemsWithIndex(ctx, models.TripsTable, "userId-index",
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil, "", true, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user trips: %w", err)
	}
	return unmarshalTrips(items), nil
}

// TripFilters are the optional equality filters for SearchTrips.
type TripFilters struct {
	Destination string
	StartPoint  string
	Date        string
}

// SearchTrips returns active trips matching every provided filter.
func (ts *TripService) SearchTrips(ctx context.Context, filters TripFilters) ([]models.Trip, error) {
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: models.TripStatusActive},
	}
	names := map[string]string{"#s": "status"}

	filter := ""
	appendFilter := func(expr string) {
		if filter != "" {
			filter += " AND "
		}
		filter += expr
	}
	if filters.Destination != "" {
		values[":destination"] = &types.AttributeValueMemberS{Value: filters.Destination}
		appendFilter("destination = :destination")
	}
	if filters.StartPoint != "" {
		values[":startPoint"] = &types.AttributeValueMemberS{Value: filters.StartPoint}
		appendFilter("startPoint = :startPoint")
	}
	if filters.Date != "" {
		values[":date"] = &types.AttributeValueMemberS{Value: filters.Date}
		names["#d"] = "date"
		appendFilter("#d = :date")
	}

	items, err := ts.Dynamo.QueryItemsWithIndex(ctx, models.TripsTable, "status-index",
		"#s = :status", values, names, filter, true, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to search trips: %w", err)
	}
	return unmarshalTrips(items), nil
}

// UpdateTrip rewrites the caller-editable fields of a trip and recomputes
// the route key and expiry.
func (ts *TripService) UpdateTrip(ctx context.Context, tripID string, input TripInput) (*models.Trip, error) {
	if err := ValidateTripInput(input); err != nil {
		return nil, err
	}

	if input.GenderPreference == "" {
		input.GenderPreference = "any"
	}
	totalSeats := 1
	if input.IsGroupTrip {
		totalSeats = input.TotalSeats
		if totalSeats <= 0 {
			totalSeats = defaultGroupSeats
		}
	}

	updateExpression := "SET destination = :destination, startPoint = :startPoint, #d = :date, #t = :time, " +
		"contact = :contact, genderPreference = :genderPreference, isGroupTrip = :isGroupTrip, " +
		"totalSeats = :totalSeats, routeKey = :routeKey, expiresAt = :expiresAt"

	attrs, err := ts.Dynamo.UpdateItem(ctx, models.TripsTable,
		map[string]types.AttributeValue{"tripId": &types.AttributeValueMemberS{Value: tripID}},
		updateExpression,
		map[string]types.AttributeValue{
			":destination":      &types.AttributeValueMemberS{Value: input.Destination},
			":startPoint":       &types.AttributeValueMemberS{Value: input.StartPoint},
			":date":             &types.AttributeValueMemberS{Value: input.Date},
			":time":             &types.AttributeValueMemberS{Value: input.Time},
			":contact":          &types.AttributeValueMemberS{Value: input.Contact},
			":genderPreference": &types.AttributeValueMemberS{Value: input.GenderPreference},
			":isGroupTrip":      &types.AttributeValueMemberBOOL{Value: input.IsGroupTrip},
			":totalSeats":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", totalSeats)},
			":routeKey":         &types.AttributeValueMemberS{Value: BuildRouteKey(input.Destination, input.StartPoint, input.Date)},
			":expiresAt":        &types.AttributeValueMemberS{Value: tripExpiry(input.Date)},
		},
		map[string]string{"#d": "date", "#t": "time"})
	if err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	var trip models.Trip
	if err := attributevalue.UnmarshalMap(attrs, &trip); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated trip: %w", err)
	}

	ts.Broadcast.ToFeed("trip", map[string]interface{}{"type": socket.DeltaModified, "trip": trip})
	return &trip, nil
}

// UpdateTripStatus sets a trip's status. The only transition taken by this
// service is active -> expired; it is never reversed.
func (ts *TripService) UpdateTripStatus(ctx context.Context, tripID, status string) error {
	_, err := ts.Dynamo.UpdateItem(ctx, models.TripsTable,
		map[string]types.AttributeValue{"tripId": &types.AttributeValueMemberS{Value: tripID}},
		"SET #s = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
		map[string]string{"#s": "status"})
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	return nil
}

// DeleteTrip removes a trip.
func (ts *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	err := ts.Dynamo.DeleteItem(ctx, models.TripsTable, map[string]types.AttributeValue{
		"tripId": &types.AttributeValueMemberS{Value: tripID},
	})
	if err != nil {
		return err
	}
	ts.Broadcast.ToFeed("trip", map[string]interface{}{"type": socket.DeltaRemoved, "tripId": tripID})
	return nil
}

// ValidateJoin checks the group-trip guards for a prospective member.
func ValidateJoin(trip models.Trip, userID string) error {
	if !trip.IsGroupTrip {
		return ErrNotGroupTrip
	}
	for _, member := range trip.Members {
		if member == userID {
			return ErrAlreadyMember
		}
	}
	if trip.AvailableSeats <= 0 {
		return ErrGroupFull
	}
	return nil
}

// JoinGroup adds a user to a group trip and takes one seat.
func (ts *TripService) JoinGroup(ctx context.Context, tripID, userID string) (*models.Trip, error) {
	trip, err := ts.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := ValidateJoin(*trip, userID); err != nil {
		return nil, err
	}

	members := append(trip.Members, userID)
	memberValues := make([]types.AttributeValue, 0, len(members))
	for _, member := range members {
		memberValues = append(memberValues, &types.AttributeValueMemberS{Value: member})
	}

	attrs, err := ts.Dynamo.UpdateItem(ctx, models.TripsTable,
		map[string]types.AttributeValue{"tripId": &types.AttributeValueMemberS{Value: tripID}},
		"SET members = :members, availableSeats = :availableSeats",
		map[string]types.AttributeValue{
			":members":        &types.AttributeValueMemberL{Value: memberValues},
			":availableSeats": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", trip.AvailableSeats-1)},
		}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to join group: %w", err)
	}

	var updated models.Trip
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated trip: %w", err)
	}

	ts.Broadcast.ToFeed("trip", map[string]interface{}{"type": socket.DeltaModified, "trip": updated})
	return &updated, nil
}

// CleanupExpiredTrips flips active trips past their expiry to expired and
// returns how many were flipped. Meant to run periodically.
func (ts *TripService) CleanupExpiredTrips(ctx context.Context) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	items, err := ts.Dynamo.QueryItemsWithIndex(ctx, models.TripsTable, "status-index",
		"#s = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: models.TripStatusActive},
			":now":    &types.AttributeValueMemberS{Value: now},
		},
		map[string]string{"#s": "status"},
		"expiresAt < :now", false, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired trips: %w", err)
	}

	count := 0
	for _, trip := range unmarshalTrips(items) {
		if err := ts.UpdateTripStatus(ctx, trip.TripID, models.TripStatusExpired); err != nil {
			log.Printf("Failed to expire trip %s: %v", trip.TripID, err)
			continue
		}
		count++
	}
	return count, nil
}

func unmarshalTrips(items []map[string]types.AttributeValue) []models.Trip {
	trips := make([]models.Trip, 0, len(items))
	for _, item := range items {
		var trip models.Trip
		if err := attributevalue.UnmarshalMap(item, &trip); err != nil {
			log.Printf("Error unmarshalling trip: %v", err)
			continue
		}
		trips = append(trips, trip)
	}
	return trips
}
