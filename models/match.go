package models

// Match links two compatible trips. Identity fields are copied from the
// trips at creation time and are not kept in sync with later profile edits.
type Match struct {
	MatchID     string `dynamodbav:"matchId" json:"matchId"` // deterministic pair key, see matching service
	Trip1ID     string `dynamodbav:"trip1Id" json:"trip1Id"`
	Trip2ID     string `dynamodbav:"trip2Id" json:"trip2Id"`
	User1ID     string `dynamodbav:"user1Id" json:"user1Id"`
	User2ID     string `dynamodbav:"user2Id" json:"user2Id"`
	User1Name   string `dynamodbav:"user1Name,omitempty" json:"user1Name,omitempty"`
	User2Name   string `dynamodbav:"user2Name,omitempty" json:"user2Name,omitempty"`
	Destination string `dynamodbav:"destination" json:"destination"`
	StartPoint  string `dynamodbav:"startPoint" json:"startPoint"`
	Date        string `dynamodbav:"date" json:"date"`
	Status      string `dynamodbav:"status" json:"status"`
	MatchedAt   string `dynamodbav:"matchedAt" json:"matchedAt"`
	ConfirmedBy string `dynamodbav:"confirmedBy,omitempty" json:"confirmedBy,omitempty"`
	ConfirmedAt string `dynamodbav:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	RejectedBy  string `dynamodbav:"rejectedBy,omitempty" json:"rejectedBy,omitempty"`
	RejectedAt  string `dynamodbav:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
}

// Match status values. Confirmed and rejected are both terminal.
const (
	MatchStatusPending   = "pending"
	MatchStatusConfirmed = "confirmed"
	MatchStatusRejected  = "rejected"
)

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"
