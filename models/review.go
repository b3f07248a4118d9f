package models

// Review is a companion review left after a completed trip.
type Review struct {
	ReviewID     string   `dynamodbav:"reviewId" json:"reviewId"`
	TripID       string   `dynamodbav:"tripId" json:"tripId"`
	MatchID      string   `dynamodbav:"matchId,omitempty" json:"matchId,omitempty"`
	ReviewerID   string   `dynamodbav:"reviewerId" json:"reviewerId"`
	ReviewerName string   `dynamodbav:"reviewerName,omitempty" json:"reviewerName,omitempty"`
	RevieweeID   string   `dynamodbav:"revieweeId" json:"revieweeId"`
	RevieweeName string   `dynamodbav:"revieweeName,omitempty" json:"revieweeName,omitempty"`
	Rating       int      `dynamodbav:"rating" json:"rating"` // 1..5
	Comment      string   `dynamodbav:"comment,omitempty" json:"comment,omitempty"`
	Tags         []string `dynamodbav:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// UserRating is the aggregate rating for a user.
type UserRating struct {
	AverageRating float64        `json:"averageRating"`
	ReviewCount   int            `json:"reviewCount"`
	Tags          map[string]int `json:"tags"`
}

// PendingReview is a companion the user has not reviewed yet.
type PendingReview struct {
	MatchID       string `json:"matchId"`
	TripID        string `json:"tripId"`
	CompanionID   string `json:"companionId"`
	CompanionName string `json:"companionName"`
	Destination   string `json:"destination"`
	Date          string `json:"date"`
}

// ReviewsTable is the DynamoDB table name for reviews
const ReviewsTable = "Reviews"
