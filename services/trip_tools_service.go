package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"unigo_server/models"
	"unigo_server/socket"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// TripToolsService backs the shared planning tools matched companions use:
// expense splitting, the packing list and the itinerary. Every change is
// broadcast to the trip's room so both companions stay in sync.
type TripToolsService struct {
	Dynamo    *DynamoService
	Broadcast *socket.Broadcaster
}

func (tts *TripToolsService) broadcast(tripID, event, deltaType string, payload interface{}) {
	tts.Broadcast.ToTrip(tripID, event, map[string]interface{}{"type": deltaType, "item": payload})
}

// --- Expenses ---

// ExpenseInput carries the caller-editable expense fields.
type ExpenseInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	SplitType   string  `json:"splitType"`
	Category    string  `json:"category"`
}

// AddExpense records a shared expense paid by one companion.
func (tts *TripToolsService) AddExpense(ctx context.Context, tripID string, input ExpenseInput, userID, userName string) (*models.Expense, error) {
	if input.Description == "" || input.Amount <= 0 {
		return nil, errors.New("expense needs a description and a positive amount")
	}
	if input.SplitType == "" {
		input.SplitType = "equal"
	}
	if input.Category == "" {
		input.Category = "general"
	}

	expense := models.Expense{
		TripID:      tripID,
		ExpenseID:   uuid.NewString(),
		Description: input.Description,
		Amount:      input.Amount,
		PaidBy:      userID,
		PaidByName:  userName,
		SplitType:   input.SplitType,
		Category:    input.Category,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := tts.Dynamo.PutItem(ctx, models.ExpensesTable, expense); err != nil {
		return nil, fmt.Errorf("failed to add expense: %w", err)
	}

	tts.broadcast(tripID, "expense", socket.DeltaAdded, expense)
	return &expense, nil
}

// UpdateExpense rewrites the editable fields of an expense.
func (tts *TripToolsService) UpdateExpense(ctx context.Context, tripID, expenseID string, input ExpenseInput) (*models.Expense, error) {
	if input.Description == "" || input.Amount <= 0 {
		return nil, errors.New("expense needs a description and a positive amount")
	}

	attrs, err := tts.Dynamo.UpdateItem(ctx, models.ExpensesTable,
		map[string]types.AttributeValue{
			"tripId":    &types.AttributeValueMemberS{Value: tripID},
			"expenseId": &types.AttributeValueMemberS{Value: expenseID},
		},
		"SET description = :description, amount = :amount, splitType = :splitType, category = :category",
		map[string]types.AttributeValue{
			":description": &types.AttributeValueMemberS{Value: input.Description},
			":amount":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%g", input.Amount)},
			":splitType":   &types.AttributeValueMemberS{Value: input.SplitType},
			":category":    &types.AttributeValueMemberS{Value: input.Category},
		}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	var expense models.Expense
	if err := attributevalue.UnmarshalMap(attrs, &expense); err != nil {
		return nil, fmt.Errorf("failed to unmarshal expense: %w", err)
	}

	tts.broadcast(tripID, "expense", socket.DeltaModified, expense)
	return &expense, nil
}

// DeleteExpense removes an expense.
func (tts *TripToolsService) DeleteExpense(ctx context.Context, tripID, expenseID string) error {
	err := tts.Dynamo.DeleteItem(ctx, models.ExpensesTable, map[string]types.AttributeValue{
		"tripId":    &types.AttributeValueMemberS{Value: tripID},
		"expenseId": &types.AttributeValueMemberS{Value: expenseID},
	})
	if err != nil {
		return err
	}
	tts.broadcast(tripID, "expense", socket.DeltaRemoved, expenseID)
	return nil
}

// ListExpenses returns a trip's expenses.
func (tts *TripToolsService) ListExpenses(ctx context.Context, tripID string) ([]models.Expense, error) {
	items, err := tts.Dynamo.QueryItems(ctx, models.ExpensesTable, "tripId = :tripId",
		map[string]types.AttributeValue{
			":tripId": &types.AttributeValueMemberS{Value: tripID},
		}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	expenses := make([]models.Expense, 0, len(items))
	for _, item := range items {
		var expense models.Expense
		if err := attributevalue.UnmarshalMap(item, &expense); err != nil {
			log.Printf("Error unmarshalling expense: %v", err)
			continue
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// CalculateBalance computes the equal-split balance between two companions.
// A positive UserBalance means the companion owes the user.
func CalculateBalance(expenses []models.Expense, userID, companionID string) models.Balance {
	var balance models.Balance

	for _, expense := range expenses {
		switch expense.PaidBy {
		case userID:
			balance.UserPaid += expense.Amount
		case companionID:
			balance.CompanionPaid += expense.Amount
		}
	}

	balance.TotalExpenses = balance.UserPaid + balance.CompanionPaid
	fairShare := balance.TotalExpenses / 2
	balance.UserBalance = balance.UserPaid - fairShare
	balance.CompanionBalance = balance.CompanionPaid - fairShare
	return balance
}

// --- Packing list ---

// AddPackingItem puts a new unclaimed item on the shared list.
func (tts *TripToolsService) AddPackingItem(ctx context.Context, tripID, name, category, userID, userName string) (*models.PackingItem, error) {
	if name == "" {
		return nil, errors.New("packing item needs a name")
	}
	if category == "" {
		category = "general"
	}

	item := models.PackingItem{
		TripID:        tripID,
		ItemID:        uuid.NewString(),
		Name:          name,
		Category:      category,
		CreatedBy:     userID,
		CreatedByName: userName,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := tts.Dynamo.PutItem(ctx, models.PackingListsTable, item); err != nil {
		return nil, fmt.Errorf("failed to add packing item: %w", err)
	}

	tts.broadcast(tripID, "packing", socket.DeltaAdded, item)
	return &item, nil
}

// ClaimPackingItem marks an item as "I'm bringing this".
func (tts *TripToolsService) ClaimPackingItem(ctx context.Context, tripID, itemID, userID, userName string) error {
	_, err := tts.Dynamo.UpdateItem(ctx, models.PackingListsTable,
		map[string]types.AttributeValue{
			"tripId": &types.AttributeValueMemberS{Value: tripID},
			"itemId": &types.AttributeValueMemberS{Value: itemID},
		},
		"SET claimedBy = :claimedBy, claimedByName = :claimedByName",
		map[string]types.AttributeValue{
			":claimedBy":     &types.AttributeValueMemberS{Value: userID},
			":claimedByName": &types.AttributeValueMemberS{Value: userName},
		}, nil)
	if err != nil {
		return fmt.Errorf("failed to claim packing item: %w", err)
	}

	tts.broadcast(tripID, "packing", socket.DeltaModified, itemID)
	return nil
}

// UnclaimPackingItem releases a claimed item.
func (tts *TripToolsService) UnclaimPackingItem(ctx context.Context, tripID, itemID string) error {
	_, err := tts.Dynamo.UpdateItem(ctx, models.PackingListsTable,
		map[string]types.AttributeValue{
			"tripId": &types.AttributeValueMemberS{Value: tripID},
			"itemId": &types.AttributeValueMemberS{Value: itemID},
		},
		"REMOVE claimedBy, claimedByName",
		nil, nil)
	if err != nil {
		return fmt.Errorf("failed to unclaim packing item: %w", err)
	}

	tts.broadcast(tripID, "packing", socket.DeltaModified, itemID)
	return nil
}

// DeletePackingItem removes an item from the list.
func (tts *TripToolsService) DeletePackingItem(ctx context.Context, tripID, itemID string) error {
	err := tts.Dynamo.DeleteItem(ctx, models.PackingListsTable, map[string]types.AttributeValue{
		"tripId": &types.AttributeValueMemberS{Value: tripID},
		"itemId": &types.AttributeValueMemberS{Value: itemID},
	})
	if err != nil {
		return err
	}
	tts.broadcast(tripID, "packing", socket.DeltaRemoved, itemID)
	return nil
}

// ListPackingItems returns a trip's packing list.
func (tts *TripToolsService) ListPackingItems(ctx context.Context, tripID string) ([]models.PackingItem, error) {
	items, err := tts.Dynamo.QueryItems(ctx, models.PackingListsTable, "tripId = :tripId",
		map[string]types.AttributeValue{
			":tripId": &types.AttributeValueMemberS{Value: tripID},
		}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch packing list: %w", err)
	}

	list := make([]models.PackingItem, 0, len(items))
	for _, item := range items {
		var packingItem models.PackingItem
		if err := attributevalue.UnmarshalMap(item, &packingItem); err != nil {
			log.Printf("Error unmarshalling packing item: %v", err)
			continue
		}
		list = append(list, packingItem)
	}
	return list, nil
}

// --- Itinerary ---

// ActivityInput carries the caller-editable itinerary fields.
type ActivityInput struct {
	Day      int    `json:"day"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// AddActivity suggests a new itinerary entry; the creator auto-approves.
func (tts *TripToolsService) AddActivity(ctx context.Context, tripID string, input ActivityInput, userID, userName string) (*models.Activity, error) {
	if input.Title == "" {
		return nil, errors.New("activity needs a title")
	}
	if input.Day <= 0 {
		input.Day = 1
	}
	if input.Time == "" {
		input.Time = "09:00"
	}
	if input.Type == "" {
		input.Type = "activity"
	}

	activity := models.Activity{
		TripID:          tripID,
		ActivityID:      uuid.NewString(),
		Day:             input.Day,
		Time:            input.Time,
		Title:           input.Title,
		Type:            input.Type,
		Location:        input.Location,
		Notes:           input.Notes,
		SuggestedBy:     userID,
		SuggestedByName: userName,
		ApprovedBy:      []string{userID},
		Status:          models.ActivitySuggested,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	if err := tts.Dynamo.PutItem(ctx, models.ItinerariesTable, activity); err != nil {
		return nil, fmt.Errorf("failed to add activity: %w", err)
	}

	tts.broadcast(tripID, "itinerary", socket.DeltaAdded, activity)
	return &activity, nil
}

// ApproveActivity adds the user to the approver set and marks the activity
// approved.
func (tts *TripToolsService) ApproveActivity(ctx context.Context, tripID, activityID, userID string) error {
	item, err := tts.Dynamo.GetItem(ctx, models.ItinerariesTable, map[string]types.AttributeValue{
		"tripId":     &types.AttributeValueMemberS{Value: tripID},
		"activityId": &types.AttributeValueMemberS{Value: activityID},
	})
	if err != nil {
		return err
	}

	var activity models.Activity
	if err := attributevalue.UnmarshalMap(item, &activity); err != nil {
		return fmt.Errorf("failed to unmarshal activity: %w", err)
	}

	approvers := activity.ApprovedBy
	seen := false
	for _, approver := range approvers {
		if approver == userID {
			seen = true
			break
		}
	}
	if !seen {
		approvers = append(approvers, userID)
	}

	approverValues := make([]types.AttributeValue, 0, len(approvers))
	for _, approver := range approvers {
		approverValues = append(approverValues, &types.AttributeValueMemberS{Value: approver})
	}

	_, err = tts.Dynamo.UpdateItem(ctx, models.ItinerariesTable,
		map[string]types.AttributeValue{
			"tripId":     &types.AttributeValueMemberS{Value: tripID},
			"activityId": &types.AttributeValueMemberS{Value: activityID},
		},
		"SET approvedBy = :approvedBy, #s = :status",
		map[string]types.AttributeValue{
			":approvedBy": &types.AttributeValueMemberL{Value: approverValues},
			":status":     &types.AttributeValueMemberS{Value: models.ActivityApproved},
		},
		map[string]string{"#s": "status"})
	if err != nil {
		return fmt.Errorf("failed to approve activity: %w", err)
	}

	tts.broadcast(tripID, "itinerary", socket.DeltaModified, activityID)
	return nil
}

// UpdateActivity rewrites the editable fields of an itinerary entry.
func (tts *TripToolsService) UpdateActivity(ctx context.Context, tripID, activityID string, input ActivityInput) error {
	if input.Title == "" {
		return errors.New("activity needs a title")
	}
	if input.Day <= 0 {
		input.Day = 1
	}
	if input.Time == "" {
		input.Time = "09:00"
	}

	_, err := tts.Dynamo.UpdateItem(ctx, models.ItinerariesTable,
		map[string]types.AttributeValue{
			"tripId":     &types.AttributeValueMemberS{Value: tripID},
			"activityId": &types.AttributeValueMemberS{Value: activityID},
		},
		"SET #day = :day, #t = :time, title = :title, #type = :type, #loc = :location, notes = :notes",
		map[string]types.AttributeValue{
			":day":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", input.Day)},
			":time":     &types.AttributeValueMemberS{Value: input.Time},
			":title":    &types.AttributeValueMemberS{Value: input.Title},
			":type":     &types.AttributeValueMemberS{Value: input.Type},
			":location": &types.AttributeValueMemberS{Value: input.Location},
			":notes":    &types.AttributeValueMemberS{Value: input.Notes},
		},
		map[string]string{"#day": "day", "#t": "time", "#type": "type", "#loc": "location"})
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}

	tts.broadcast(tripID, "itinerary", socket.DeltaModified, activityID)
	return nil
}

// DeleteActivity removes an itinerary entry.
func (tts *TripToolsService) DeleteActivity(ctx context.Context, tripID, activityID string) error {
	err := tts.Dynamo.DeleteItem(ctx, models.ItinerariesTable, map[string]types.AttributeValue{
		"tripId":     &types.AttributeValueMemberS{Value: tripID},
		"activityId": &types.AttributeValueMemberS{Value: activityID},
	})
	if err != nil {
		return err
	}
	tts.broadcast(tripID, "itinerary", socket.DeltaRemoved, activityID)
	return nil
}

// SortActivities orders itinerary entries by day, then departure time.
func SortActivities(activities []models.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		if activities[i].Day != activities[j].Day {
			return activities[i].Day < activities[j].Day
		}
		return activities[i].Time < activities[j].Time
	})
}

// ListItinerary returns a trip's itinerary sorted by day then time.
func (tts *TripToolsService) ListItinerary(ctx context.Context, tripID string) ([]models.Activity, error) {
	items, err := tts.Dynamo.QueryItems(ctx, models.ItinerariesTable, "tripId = :tripId",
		map[string]types.AttributeValue{
			":tripId": &types.AttributeValueMemberS{Value: tripID},
		}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary: %w", err)
	}

	activities := make([]models.Activity, 0, len(items))
	for _, item := range items {
		var activity models.Activity
		if err := attributevalue.UnmarshalMap(item, &activity); err != nil {
			log.Printf("Error unmarshalling activity: %v", err)
			continue
		}
		activities = append(activities, activity)
	}

	SortActivities(activities)
	return activities, nil
}
