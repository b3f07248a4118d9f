package models

// Trip is a user's registered travel plan.
type Trip struct {
	TripID           string   `dynamodbav:"tripId" json:"tripId"`
	UserID           string   `dynamodbav:"userId" json:"userId"`
	UserDisplayName  string   `dynamodbav:"userDisplayName,omitempty" json:"userDisplayName,omitempty"`
	UserEmail        string   `dynamodbav:"userEmail,omitempty" json:"userEmail,omitempty"`
	Destination      string   `dynamodbav:"destination" json:"destination"`
	StartPoint       string   `dynamodbav:"startPoint" json:"startPoint"`
	Date             string   `dynamodbav:"date" json:"date"` // YYYY-MM-DD
	Time             string   `dynamodbav:"time" json:"time"` // HH:MM, 24-hour
	Contact          string   `dynamodbav:"contact,omitempty" json:"contact,omitempty"`
	GenderPreference string   `dynamodbav:"genderPreference,omitempty" json:"genderPreference,omitempty"`
	IsGroupTrip      bool     `dynamodbav:"isGroupTrip" json:"isGroupTrip"`
	TotalSeats       int      `dynamodbav:"totalSeats" json:"totalSeats"`
	AvailableSeats   int      `dynamodbav:"availableSeats" json:"availableSeats"`
	Members          []string `dynamodbav:"members" json:"members"`
	Status           string   `dynamodbav:"status" json:"status"`
	RouteKey         string   `dynamodbav:"routeKey" json:"-"` // destination|startPoint|date, partition key of routeKey-index
	CreatedAt        string   `dynamodbav:"createdAt" json:"createdAt"`
	ExpiresAt        string   `dynamodbav:"expiresAt" json:"expiresAt"`
}

// Trip status values. A trip only ever moves active -> expired.
const (
	TripStatusActive  = "active"
	TripStatusExpired = "expired"
)

// TripsTable is the DynamoDB table name for trips
const TripsTable = "Trips"
