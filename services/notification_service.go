package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"unigo_server/models"
	"unigo_server/socket"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("notification belongs to another user")
)

// NotificationService creates in-app notifications and queued emails for
// matching events, and manages the per-user notification feed. Every failure
// on the event paths is logged and swallowed: a lost notification never
// undoes a match.
type NotificationService struct {
	Dynamo    *DynamoService
	Profiles  *UserProfileService
	Broadcast *socket.Broadcaster
}

// CreateNotification persists a notification and pushes an "added" delta to
// its recipient.
func (ns *NotificationService) CreateNotification(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	if notification.UserID == "" {
		return nil, errors.New("missing userId for notification")
	}
	if notification.Title == "" {
		notification.Title = "Notification"
	}
	notification.NotificationID = uuid.NewString()
	notification.Read = false
	notification.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ns.Dynamo.PutItem(ctx, models.NotificationsTable, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	ns.Broadcast.ToUser(notification.UserID, "notification", map[string]interface{}{
		"type":         socket.DeltaAdded,
		"notification": notification,
	})
	return &notification, nil
}

// QueueEmail hands an email to the external mailer by writing it to the
// mail queue table. Delivery happens outside this service.
func (ns *NotificationService) QueueEmail(ctx context.Context, email models.QueuedEmail) error {
	if email.To == "" || email.Subject == "" || email.Text == "" {
		return errors.New("missing email fields")
	}
	email.MailID = uuid.NewString()
	email.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ns.Dynamo.PutItem(ctx, models.MailTable, email); err != nil {
		return fmt.Errorf("failed to queue email: %w", err)
	}
	return nil
}

// buildMatchFoundNotifications constructs the pair of in-app notifications
// for a new match, one per user, each naming the other party.
func buildMatchFoundNotifications(match models.Match) []models.Notification {
	message := fmt.Sprintf("Match found! %s from %s on %s", match.Destination, match.StartPoint, match.Date)
	return []models.Notification{
		{
			UserID:    match.User1ID,
			Type:      models.NotificationMatchFound,
			Title:     "New travel companion match",
			Message:   message,
			TripID:    match.Trip1ID,
			MatchID:   match.MatchID,
			ActorID:   match.User2ID,
			ActorName: match.User2Name,
		},
		{
			UserID:    match.User2ID,
			Type:      models.NotificationMatchFound,
			Title:     "New travel companion match",
			Message:   message,
			TripID:    match.Trip2ID,
			MatchID:   match.MatchID,
			ActorID:   match.User1ID,
			ActorName: match.User1Name,
		},
	}
}

// buildCompanionSelectedNotifications constructs the pair of notifications
// sent when one party confirms the match.
func buildCompanionSelectedNotifications(match models.Match) []models.Notification {
	return []models.Notification{
		{
			UserID:    match.User1ID,
			Type:      models.NotificationCompanionSelected,
			Title:     "Companion confirmed",
			Message:   fmt.Sprintf("%s is confirmed as your travel companion for %s on %s", match.User2Name, match.Destination, match.Date),
			TripID:    match.Trip1ID,
			MatchID:   match.MatchID,
			ActorID:   match.User2ID,
			ActorName: match.User2Name,
		},
		{
			UserID:    match.User2ID,
			Type:      models.NotificationCompanionSelected,
			Title:     "Companion confirmed",
			Message:   fmt.Sprintf("%s is confirmed as your travel companion for %s on %s", match.User1Name, match.Destination, match.Date),
			TripID:    match.Trip2ID,
			MatchID:   match.MatchID,
			ActorID:   match.User1ID,
			ActorName: match.User1Name,
		},
	}
}

// resolveEmail prefers the address embedded on the trip record and falls
// back to the user profile. An empty return means no email goes out for
// that side; the in-app notification is unaffected.
func (ns *NotificationService) resolveEmail(ctx context.Context, userID, tripEmail string) string {
	if tripEmail != "" {
		return tripEmail
	}
	if ns.Profiles == nil {
		return ""
	}
	email, err := ns.Profiles.LookupEmail(ctx, userID)
	if err != nil {
		log.Printf("Could not resolve email for user %s: %v", userID, err)
		return ""
	}
	return email
}

// NotifyMatchFound dispatches the match_found notifications and emails for a
// freshly created match. Best effort: failures are logged, never returned.
func (ns *NotificationService) NotifyMatchFound(ctx context.Context, match models.Match, trip1, trip2 models.Trip) {
	for _, notification := range buildMatchFoundNotifications(match) {
		if _, err := ns.CreateNotification(ctx, notification); err != nil {
			log.Printf("❌ Failed to notify user %s of match %s: %v", notification.UserID, match.MatchID, err)
		}
	}

	emails := map[string]string{
		match.User1ID: ns.resolveEmail(ctx, match.User1ID, trip1.UserEmail),
		match.User2ID: ns.resolveEmail(ctx, match.User2ID, trip2.UserEmail),
	}
	subject := "New travel companion match!"
	body := fmt.Sprintf("Good news! Someone is travelling to %s from %s on %s around your departure time. Open UniGo to see your match.",
		match.Destination, match.StartPoint, match.Date)

	for userID, address := range emails {
		if address == "" {
			continue
		}
		err := ns.QueueEmail(ctx, models.QueuedEmail{
			To:      address,
			Subject: subject,
			Text:    body,
			UserID:  userID,
			Type:    models.NotificationMatchFound,
		})
		if err != nil {
			log.Printf("❌ Failed to queue match email for user %s: %v", userID, err)
		}
	}
}

// NotifyCompanionSelected dispatches the companion_selected pair after a
// confirmation. Best effort, same policy as NotifyMatchFound.
func (ns *NotificationService) NotifyCompanionSelected(ctx context.Context, match models.Match) {
	for _, notification := range buildCompanionSelectedNotifications(match) {
		if _, err := ns.CreateNotification(ctx, notification); err != nil {
			log.Printf("❌ Failed to notify user %s of confirmation on match %s: %v", notification.UserID, match.MatchID, err)
			continue
		}

		address := ns.resolveEmail(ctx, notification.UserID, "")
		if address == "" {
			continue
		}
		err := ns.QueueEmail(ctx, models.QueuedEmail{
			To:      address,
			Subject: "Your travel companion is confirmed",
			Text:    notification.Message,
			UserID:  notification.UserID,
			Type:    models.NotificationCompanionSelected,
		})
		if err != nil {
			log.Printf("❌ Failed to queue confirmation email for user %s: %v", notification.UserID, err)
		}
	}
}

// GetNotifications returns a user's notifications, newest first.
func (ns *NotificationService) GetNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	items, err := ns.Dynamo.QueryItemsWithIndex(ctx, models.NotificationsTable, "userId-index",
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil, "", true, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	notifications := make([]models.Notification, 0, len(items))
	for _, item := range items {
		var notification models.Notification
		if err := attributevalue.UnmarshalMap(item, &notification); err != nil {
			log.Printf("Error unmarshalling notification: %v", err)
			continue
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

// MarkNotificationRead flips the read flag and pushes a "modified" delta.
func (ns *NotificationService) MarkNotificationRead(ctx context.Context, notificationID string) (*models.Notification, error) {
	attrs, err := ns.Dynamo.UpdateItem(ctx, models.NotificationsTable,
		map[string]types.AttributeValue{"notificationId": &types.AttributeValueMemberS{Value: notificationID}},
		"SET #r = :read",
		map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{"#r": "read"})
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	var notification models.Notification
	if err := attributevalue.UnmarshalMap(attrs, &notification); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	ns.Broadcast.ToUser(notification.UserID, "notification", map[string]interface{}{
		"type":         socket.DeltaModified,
		"notification": notification,
	})
	return &notification, nil
}

// DeleteNotification removes a notification after checking the caller owns
// it, then pushes a "removed" delta.
func (ns *NotificationService) DeleteNotification(ctx context.Context, notificationID, userID string) error {
	key := map[string]types.AttributeValue{
		"notificationId": &types.AttributeValueMemberS{Value: notificationID},
	}

	item, err := ns.Dynamo.GetItem(ctx, models.NotificationsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}

	var notification models.Notification
	if err := attributevalue.UnmarshalMap(item, &notification); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	if notification.UserID != userID {
		return ErrNotNotificationOwner
	}

	if err := ns.Dynamo.DeleteItem(ctx, models.NotificationsTable, key); err != nil {
		return err
	}

	ns.Broadcast.ToUser(userID, "notification", map[string]interface{}{
		"type":           socket.DeltaRemoved,
		"notificationId": notificationID,
	})
	return nil
}
