package models

// Notification is an in-app notification owned by its recipient.
// Only the read flag is ever mutated after creation.
type Notification struct {
	NotificationID string `dynamodbav:"notificationId" json:"notificationId"`
	UserID         string `dynamodbav:"userId" json:"userId"`
	Type           string `dynamodbav:"type" json:"type"`
	Title          string `dynamodbav:"title" json:"title"`
	Message        string `dynamodbav:"message" json:"message"`
	TripID         string `dynamodbav:"tripId,omitempty" json:"tripId,omitempty"`
	MatchID        string `dynamodbav:"matchId,omitempty" json:"matchId,omitempty"`
	ActorID        string `dynamodbav:"actorId,omitempty" json:"actorId,omitempty"`
	ActorName      string `dynamodbav:"actorName,omitempty" json:"actorName,omitempty"`
	Read           bool   `dynamodbav:"read" json:"read"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// Notification types
const (
	NotificationMatchFound        = "match_found"
	NotificationCompanionSelected = "companion_selected"
)

// NotificationsTable is the DynamoDB table name for notifications
const NotificationsTable = "Notifications"
